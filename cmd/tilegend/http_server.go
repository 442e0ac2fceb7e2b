package main

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/kdudkov/tilegen/pkg/mercator"
	"github.com/kdudkov/tilegen/pkg/pyramid"
)

func NewHttp(app *App) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnablePrintRoutes:     false,
	})

	f.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${queryParams}\n",
	}))

	f.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	f.Get("/areas", getAreasHandler(app))
	f.Get("/areas/:key/tiles", getAreaTilesHandler(app))
	f.Get("/pyramid", getPyramidHandler(app))
	f.Get("/tile/:zoom/:x/:y/bounds", getTileBoundsHandler(app))

	return f
}

type zoomLevel struct {
	Zoom  int      `json:"zoom"`
	Count int      `json:"count"`
	Tiles [][3]int `json:"tiles"`
}

// zoom levels go out ascending, tiles keep the generator's order
func makeLevels(gen *pyramid.Generator) []*zoomLevel {
	res := gen.Generate()
	levels := make([]*zoomLevel, 0, gen.GetMaxZoom()-gen.GetMinZoom()+1)

	for z := gen.GetMinZoom(); z <= gen.GetMaxZoom(); z++ {
		l := &zoomLevel{Zoom: z, Tiles: make([][3]int, 0, len(res[z]))}

		for _, t := range res[z] {
			l.Tiles = append(l.Tiles, [3]int{t.Z, t.X, t.Y})
		}

		l.Count = len(l.Tiles)
		levels = append(levels, l)
	}

	return levels
}

func getAreasHandler(app *App) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		r := make([]map[string]any, 0)

		app.areas.All(func(a *Area) bool {
			ad := make(map[string]any)
			ad["url"] = "/areas/" + url.QueryEscape(a.Key) + "/tiles"
			ad["min_zoom"] = a.Gen.GetMinZoom()
			ad["max_zoom"] = a.Gen.GetMaxZoom()
			ad["bounds"] = a.Gen.GetBounds()
			ad["name"] = a.Name
			r = append(r, ad)

			return true
		})

		return c.JSON(r)
	}
}

func getAreaTilesHandler(app *App) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		name, _ := url.QueryUnescape(c.Params("key"))

		area, ok := app.areas.Get(name)

		if !ok {
			return c.Status(fiber.StatusNotFound).SendString(fmt.Sprintf("area %s is not found", name))
		}

		return c.JSON(makeLevels(area.Gen))
	}
}

func getPyramidHandler(app *App) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		cfg := pyramid.Config{
			MinZoom:  c.QueryInt("minZoom", 1),
			MaxZoom:  c.QueryInt("maxZoom", 5),
			Strategy: pyramid.Parallel,
		}

		if s := c.Query("bounds"); s != "" {
			b, err := pyramid.ParseBoundsArg(s)

			if err != nil {
				return c.Status(fiber.StatusBadRequest).SendString("error: invalid bounds value")
			}

			cfg.Bounds = b
		}

		gen, err := pyramid.New(cfg)

		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}

		return c.JSON(makeLevels(gen))
	}
}

func getTileBoundsHandler(app *App) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var err error
		var zoom, x, y int

		if zoom, err = c.ParamsInt("zoom"); err != nil {
			return fmt.Errorf("error: invalid zoom value")
		}

		if x, err = c.ParamsInt("x"); err != nil {
			return fmt.Errorf("error: invalid x value")
		}

		if y, err = c.ParamsInt("y"); err != nil {
			return fmt.Errorf("error: invalid y value")
		}

		b, err := mercator.Tile{Z: zoom, X: x, Y: y}.Bounds()

		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString(err.Error())
		}

		return c.JSON(b)
	}
}
