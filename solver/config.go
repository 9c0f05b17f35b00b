package solver

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var solverCfg Config

// Config holds the solver defaults loaded from conf/config.ini. Every field
// can still be overridden per request through Settings.
type Config struct {
	InitialGuess  float64 // m/s
	TolerancePct  float64
	MaxIterations int
	TraceDepth    int
	SweepWorkers  int
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("config file not found, using built-in defaults: ", err)
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	solverCfg = Config{
		InitialGuess:  file.Section("solver").Key("InitialGuess").MustFloat64(10.0),
		TolerancePct:  file.Section("solver").Key("TolerancePct").MustFloat64(1.0),
		MaxIterations: file.Section("solver").Key("MaxIterations").MustInt(200),
		TraceDepth:    file.Section("solver").Key("TraceDepth").MustInt(64),
		SweepWorkers:  file.Section("solver").Key("SweepWorkers").MustInt(4),
	}
}

// DefaultSettings returns the configured solver settings.
func DefaultSettings() Settings {
	return Settings{
		InitialGuess:  solverCfg.InitialGuess,
		TolerancePct:  solverCfg.TolerancePct,
		MaxIterations: solverCfg.MaxIterations,
		TraceDepth:    solverCfg.TraceDepth,
	}
}
