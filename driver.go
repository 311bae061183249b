package objectutil

import (
	"sync"

	gojson "github.com/goccy/go-json"
)

// JSONDriver is the text codec behind the lossy sequence clone. The default
// implementation is backed by goccy/go-json and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver in use.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps goccy/go-json.
type defaultJSONDriver struct{}

func (defaultJSONDriver) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (defaultJSONDriver) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (defaultJSONDriver) Name() string                       { return "go-json" }

// DefaultJSONDriver returns the go-json backed driver.
func DefaultJSONDriver() JSONDriver { return defaultJSONDriver{} }
