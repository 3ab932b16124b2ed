/*Package metrics wraps datadog-go to facilitate metric recording.
Naming convention of metric keys:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/nftique/storefront/base/env"
	"github.com/nftique/storefront/base/log"
)

// ddRate is the rate to pass metrics to the datadog agent. 1 means always.
const ddRate = 1

// buffer a few counters before sending to statsd
const bufferMetrics = 10

// Ender finishes a timer started by BumpTime
type Ender interface {
	End()
}

// Service provides the metric recording interface
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	initOnce sync.Once
	client   statsCli
)

// initClient connects to the datadog agent once; without a configured
// agent host the metrics degrade to debug logs.
func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		client = &LogClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, falling back to log client")
		client = &LogClient{}
		return
	}
	client = cli
}

type impl struct {
	pkgName string
	tags    []string
}

// New creates a metric client with the package name as prefix
func New(pkgName string) Service {
	return &impl{
		pkgName: pkgName,
		tags: []string{
			"env:" + env.EnvName(),
			"app:" + env.AppName(),
		},
	}
}

// BumpAvg bumps the average for the given key.
func (im *impl) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := client.Gauge(im.pkgName+"."+key, val, append(im.tags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpAvg failed")
	}
}

// BumpSum bumps the sum for the given key.
func (im *impl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := client.Count(im.pkgName+"."+key, int64(val), append(im.tags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpSum failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (im *impl) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	if err := client.Histogram(im.pkgName+"."+key, val, append(im.tags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpHistogram failed")
	}
}

// BumpTime starts a timer for the given key. A convenient way of recording
// the duration of a function:
//
//     defer m.BumpTime("my.function.time").End()
func (im *impl) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initClient)
	return &timeTracker{
		start: time.Now(),
		key:   im.pkgName + "." + key,
		tags:  append(im.tags, parseTag(tags)...),
	}
}

// parseTag turns alternating key/value arguments into datadog "k:v" tags
func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := d / time.Millisecond
	nsec := d % time.Millisecond
	dur := float64(msec) + float64(nsec)*1e-6

	if err := client.TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur}).Error("BumpTime failed")
	}
}
