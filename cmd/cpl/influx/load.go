package influx

import (
	"fmt"
	"path/filepath"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	cplib "github.com/openziti/cpl"
	"github.com/openziti/cpl/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	influxCmd.AddCommand(influxLoadCmd)
}

var influxLoadCmd = &cobra.Command{
	Use:   "load <metricsRoot>",
	Short: "Load metrics instrument output into InfluxDB",
	Args:  cobra.ExactArgs(1),
	RunE:  influxLoad,
}

func influxLoad(_ *cobra.Command, args []string) error {
	found, err := util.DiscoverMetrics(args[0])
	if err != nil {
		return errors.Wrapf(err, "error discovering metrics in [%s]", args[0])
	}

	authToken := ""
	if influxDbUsername != "" || influxDbPassword != "" {
		authToken = fmt.Sprintf("%s:%s", influxDbUsername, influxDbPassword)
	}
	client := influxdb2.NewClient(influxDbUrl, authToken)
	defer client.Close()
	writeApi := client.WriteAPI("", influxDbDatabase)

	loaded := 0
	for path, id := range found {
		if id.Id != cplib.MetricsId {
			logrus.Debugf("skipping [%s] with id [%s]", path, id.Id)
			continue
		}
		instance := id.Values["instance"]
		for _, dataset := range cplib.MetricsSeries {
			data, err := util.ReadSamples(filepath.Join(path, dataset+".csv"))
			if err != nil {
				return errors.Wrapf(err, "error reading dataset [%s]", dataset)
			}
			for ts, v := range data {
				p := influxdb2.NewPoint(dataset, nil, map[string]interface{}{"v": v}, time.Unix(0, ts)).AddTag("instance", instance)
				writeApi.WritePoint(p)
			}
			logrus.Infof("wrote [%d] points for instance [%s] dataset [%s]", len(data), instance, dataset)
		}
		loaded++
	}
	writeApi.Flush()

	if loaded == 0 {
		return errors.Errorf("no metrics found in [%s]", args[0])
	}
	return nil
}
