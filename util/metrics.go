package util

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const metricsIdFile = "metrics.id"

// MetricsId identifies the owner of a directory of sample files.
//
type MetricsId struct {
	Id     string            `json:"id"`
	Values map[string]string `json:"values,omitempty"`
}

func WriteMetricsId(id, outPath string, values map[string]string) error {
	data, err := json.MarshalIndent(&MetricsId{Id: id, Values: values}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "error encoding metrics id")
	}
	if err := os.WriteFile(filepath.Join(outPath, metricsIdFile), data, 0644); err != nil {
		return errors.Wrapf(err, "error writing metrics id to [%s]", outPath)
	}
	return nil
}

func ReadMetricsId(path string) (*MetricsId, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	metricsId := &MetricsId{}
	if err := json.Unmarshal(data, metricsId); err != nil {
		return nil, errors.Wrapf(err, "error decoding [%s]", path)
	}
	return metricsId, nil
}

// DiscoverMetrics walks root and returns every directory containing a metrics.id, keyed by that directory.
//
func DiscoverMetrics(root string) (map[string]*MetricsId, error) {
	metricsMap := make(map[string]*MetricsId)
	err := filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() || fi.Name() != metricsIdFile {
			return nil
		}
		metricsId, err := ReadMetricsId(path)
		if err != nil {
			return errors.Wrapf(err, "error reading [%s]", path)
		}
		metricsMap[filepath.Dir(path)] = metricsId
		return nil
	})
	if err != nil {
		return nil, err
	}
	return metricsMap, nil
}

type Sample struct {
	Ts time.Time
	V  int64
}

// WriteSamples writes samples to <outPath>/<name>.csv as "unixNanos,value" lines.
//
func WriteSamples(name, outPath string, samples []*Sample) error {
	path := filepath.Join(outPath, fmt.Sprintf("%s.csv", name))
	oF, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = oF.Close() }()

	w := bufio.NewWriter(oF)
	for _, sample := range samples {
		if _, err := fmt.Fprintf(w, "%d,%d\n", sample.Ts.UnixNano(), sample.V); err != nil {
			return errors.Wrapf(err, "error writing [%s]", path)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "error flushing [%s]", path)
	}
	logrus.Infof("wrote [%d] samples to [%s]", len(samples), path)
	return nil
}

// ReadSamples reads a file produced by WriteSamples, keyed by unix nanoseconds.
//
func ReadSamples(path string) (map[int64]int64, error) {
	iF, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = iF.Close() }()

	data := make(map[int64]int64)
	scanner := bufio.NewScanner(iF)
	line := 0
	for scanner.Scan() {
		line++
		tokens := strings.Split(scanner.Text(), ",")
		if len(tokens) != 2 {
			return nil, errors.Errorf("malformed sample at [%s:%d]", path, line)
		}
		ts, err := strconv.ParseInt(tokens[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad timestamp at [%s:%d]", path, line)
		}
		v, err := strconv.ParseInt(tokens[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value at [%s:%d]", path, line)
		}
		data[ts] = v
	}
	return data, scanner.Err()
}
