package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/ttpr0/go-isochrone/hull"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	if config.Server.Addr == "" {
		config.Server.Addr = ":5002"
	}
	if config.Shape.Concavity <= 0 {
		config.Shape.Concavity = hull.DEFAULT_CONCAVITY
	}
	if config.Shape.LengthThreshold < 0 {
		config.Shape.LengthThreshold = hull.DEFAULT_LENGTH_THRESHOLD
	}
	return config
}

type Config struct {
	Source SourceOptions `yaml:"source"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Shape struct {
		Concavity       float64 `yaml:"concavity"`
		LengthThreshold float64 `yaml:"length-threshold"`
	} `yaml:"shape"`
}

type SourceOptions struct {
	CSV string `yaml:"csv"`
	OSM string `yaml:"osm"`
}
