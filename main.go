package main

import (
	"net/http"
	"os"

	"golang.org/x/exp/slog"

	"github.com/ttpr0/go-isochrone/graph"
	"github.com/ttpr0/go-isochrone/parser"
)

var CONFIG Config
var NETWORK graph.EdgeList

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	CONFIG = ReadConfig("./config.yaml")
	NETWORK = LoadNetwork(CONFIG)

	app := http.NewServeMux()
	MapPost(app, "/v0/isochrone", HandleIsochroneRequest)
	MapGet(app, "/v0/status", HandleStatusRequest)

	slog.Info("listening on " + CONFIG.Server.Addr)
	http.ListenAndServe(CONFIG.Server.Addr, app)
}

func LoadNetwork(config Config) graph.EdgeList {
	if config.Source.CSV != "" {
		return parser.ReadEdgeCSV(config.Source.CSV)
	}
	if config.Source.OSM != "" {
		return parser.ParseEdgeList(config.Source.OSM, &parser.DrivingDecoder{})
	}
	slog.Error("no network source configured")
	panic("missing network source")
}
