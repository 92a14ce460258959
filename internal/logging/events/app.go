package events

import "github.com/atomicstack/popup-pick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(outcome string, err error) {
	payload := map[string]interface{}{"outcome": outcome}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.finish", payload)
}
