package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors info, warning and error entries into JSON files named
// after path with the level as extension.
func AddTracer(path string) {
	pathMap := lfshook.PathMap{
		log.InfoLevel:  path + ".info",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".error",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	base.Hooks.Add(hook)
}
