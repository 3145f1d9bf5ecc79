package geometry

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var geoCfg Config

type Config struct {
	MeniscusSamples int
	BendSamples     int
	ArcSamples      int
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		log.WithField("err", err).Debug("no config file, using built-in sampling defaults")
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	geoCfg = Config{
		MeniscusSamples: file.Section("geometry").Key("MeniscusSamples").MustInt(100),
		BendSamples:     file.Section("geometry").Key("BendSamples").MustInt(50),
		ArcSamples:      file.Section("geometry").Key("ArcSamples").MustInt(50),
	}
}
