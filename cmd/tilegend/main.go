package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/kdudkov/tilegen/pkg/pyramid"
)

type App struct {
	addr      string
	areasFile string
	logger    *slog.Logger
	areas     *Areas
}

func NewApp(addr string) *App {
	return &App{
		areas:  NewAreas(),
		logger: slog.Default(),
		addr:   addr,
	}
}

func (app *App) addAreas() error {
	d, err := os.ReadFile(app.areasFile)

	if err != nil {
		return err
	}

	var res []*pyramid.AreaDescription

	if err := yaml.Unmarshal(d, &res); err != nil {
		return err
	}

	for _, a := range res {
		gen, err := pyramid.NewAreaGenerator(a)

		if err != nil {
			app.logger.Error("invalid area "+a.Key, "error", err)
			continue
		}

		app.areas.Add(&Area{Key: a.Key, Name: a.Name, Gen: gen})
		app.logger.Info(fmt.Sprintf("loaded area %s, name %s", a.Key, a.Name))
	}

	return nil
}

func (app *App) Run() {
	app.logger.Info(getVersionFull())

	if err := app.addAreas(); err != nil {
		app.logger.Error("no areas loaded", "error", err)
	}

	http := NewHttp(app)

	app.logger.Info("listening on " + app.addr)

	go func() {
		if err := http.Listen(app.addr); err != nil {
			panic(err)
		}
	}()

	app.loop()
}

func (app *App) loop() {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	<-sigc
}

func main() {
	var areasFile = flag.String("areas", "areas.yml", "named areas file")
	var addr = flag.String("addr", ":8889", "listen address")
	var debug = flag.Bool("debug", false, "")

	flag.Parse()

	var h slog.Handler
	if *debug {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	slog.SetDefault(slog.New(h))

	app := NewApp(*addr)
	app.areasFile = *areasFile
	app.Run()
}
