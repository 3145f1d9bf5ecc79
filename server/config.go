package server

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var srvCfg Config

type Config struct {
	AnimSteps  int
	FrameDelay time.Duration
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		file, err = ini.Load("../conf/config.ini")
	}
	if err != nil {
		log.WithField("err", err).Debug("no config file, using built-in server defaults")
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	srvCfg = Config{
		AnimSteps:  file.Section("anim").Key("Steps").MustInt(30),
		FrameDelay: time.Duration(file.Section("anim").Key("FrameDelayMs").MustInt(20)) * time.Millisecond,
	}
}
