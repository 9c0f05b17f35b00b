package server

import (
	"log"

	"gopkg.in/ini.v1"
)

// Addr returns the listen address from conf/config.ini, defaulting to :9000.
func Addr() string {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Println("config file not found, listening on :9000: ", err)
		return ":9000"
	}
	return file.Section("server").Key("Addr").MustString(":9000")
}
