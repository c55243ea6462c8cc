package logsvc

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/rollbar/rollbar-go"
	rbErrors "github.com/rollbar/rollbar-go/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

// RollbarLogger writes every entry to std and reports it to Rollbar when enabled.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(rbErrors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// entry is a log call split into what Rollbar understands.
type entry struct {
	msg    string
	err    error
	member *user.User
	extras map[string]interface{}
	rest   []interface{}
}

// newEntry accepts: error, user.User (the session member), map[string]interface{} (extras), anything else.
func newEntry(msg string, args []interface{}) entry {
	e := entry{msg: msg, extras: map[string]interface{}{}}
	for _, arg := range args {
		switch v := arg.(type) {
		case user.User:
			if e.member == nil && v.ID != "" {
				usr := v
				e.member = &usr
			}
		case error:
			if e.err == nil {
				e.err = v
			} else {
				e.rest = append(e.rest, v)
			}
		case map[string]interface{}:
			for k, val := range v {
				e.extras[k] = val
			}
		default:
			e.rest = append(e.rest, v)
		}
	}

	var opErr *core.OperationError
	if e.err != nil && errors.As(e.err, &opErr) && opErr.Outcome.Notice != nil {
		e.extras["notice"] = opErr.Outcome.Notice.Title
	}
	if len(e.rest) > 0 {
		e.extras["args"] = fmt.Sprint(e.rest...)
	}
	return e
}

func (e entry) interfaces() []interface{} {
	out := []interface{}{e.msg}
	if e.err != nil {
		out = append(out, e.err)
	}
	if len(e.extras) > 0 {
		out = append(out, e.extras)
	}
	return out
}

func (l RollbarLogger) log(level, msg string, args []interface{}) {
	e := newEntry(msg, args)
	if e.member != nil {
		rollbar.SetPerson(e.member.ID, e.member.Name, e.member.Email)
	} else {
		rollbar.ClearPerson()
	}
	rollbar.Log(level, e.interfaces()...)

	l.std.Printf("[%s] %s", strings.ToUpper(level), msg)
	if e.err != nil {
		l.std.Printf("%+v", e.err)
	}
	for _, arg := range e.rest {
		l.std.Printf("%+v", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	l.log(rollbar.DEBUG, msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	l.log(rollbar.INFO, msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	l.log(rollbar.WARN, msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	l.log(rollbar.ERR, msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.log(rollbar.CRIT, msg, args)
	rollbar.Wait()
	l.std.Fatal(msg)
}
