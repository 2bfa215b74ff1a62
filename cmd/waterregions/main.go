// waterregions loads a map, builds its water region cache and answers
// connectivity queries against it.
//
// Usage:
//
//	go run ./cmd/waterregions -tile 40,17
//	go run ./cmd/waterregions -map maps/harbour.yaml -dump
//	go run ./cmd/waterregions -tile 3,3 -save
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/waterways/internal/config"
	"github.com/udisondev/waterways/internal/db"
	"github.com/udisondev/waterways/internal/savegame"
	"github.com/udisondev/waterways/internal/tilemap"
	"github.com/udisondev/waterways/internal/waterregion"
)

const ConfigPath = "config/waterways.yaml"

type options struct {
	mapPath string
	tile    string
	dump    bool
	save    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.mapPath, "map", "", "map file, overrides map_path from the config")
	flag.StringVar(&opts.tile, "tile", "", "print the patch at x,y and its neighbours")
	flag.BoolVar(&opts.dump, "dump", false, "print the label grid of every region")
	flag.BoolVar(&opts.save, "save", false, "save region flags even if save_on_exit is off")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfgPath := ConfigPath
	if p := os.Getenv("WATERWAYS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadWaterways(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	mapPath := cfg.MapPath
	if opts.mapPath != "" {
		mapPath = opts.mapPath
	}
	slog.Info("waterregions starting", "log_level", cfg.LogLevel, "map", mapPath,
		"persistence", cfg.Persistence.Enabled)

	// Map parsing and database setup are independent.
	var (
		m        *tilemap.Map
		database *db.DB
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if m, err = tilemap.LoadFile(mapPath); err != nil {
			return fmt.Errorf("loading map: %w", err)
		}
		slog.Info("map loaded", "size_x", m.Dims().SizeX(), "size_y", m.Dims().SizeY())
		return nil
	})
	if cfg.Persistence.Enabled {
		g.Go(func() error {
			var err error
			if database, err = db.New(gctx, cfg.Database.DSN()); err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			slog.Info("database connected")
			if err := db.RunMigrations(gctx, cfg.Database.DSN()); err != nil {
				return fmt.Errorf("running migrations: %w", err)
			}
			return nil
		})
	}
	err = g.Wait()
	if database != nil {
		defer database.Close()
	}
	if err != nil {
		return err
	}

	store := waterregion.NewStore(m)

	var repo *db.WaterRegionRepository
	if database != nil {
		repo = db.NewWaterRegionRepository(database.Pool())
		restored, err := savegame.Restore(ctx, repo, store, m, cfg.SaveSlot)
		switch {
		case errors.Is(err, savegame.ErrMapChanged), errors.Is(err, waterregion.ErrRegionCountMismatch):
			slog.Warn("ignoring saved water regions", "slot", cfg.SaveSlot, "err", err)
		case err != nil:
			return err
		case !restored:
			slog.Info("no saved water regions", "slot", cfg.SaveSlot)
		}
	}

	if opts.tile != "" {
		x, y, err := parseTile(opts.tile, m.Dims())
		if err != nil {
			return err
		}
		printTile(out, store, m.TileXY(x, y))
	}

	if opts.dump {
		if err := dump(ctx, out, store); err != nil {
			return err
		}
	}

	if repo != nil && (opts.save || cfg.Persistence.SaveOnExit) {
		if err := savegame.Save(ctx, repo, store, m, cfg.SaveSlot); err != nil {
			return err
		}
	}

	return nil
}

// parseTile parses "x,y" and checks it against dims.
func parseTile(s string, dims tilemap.Dims) (uint32, uint32, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("tile %q: want x,y", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("tile %q: parsing x: %w", s, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("tile %q: parsing y: %w", s, err)
	}
	if x >= uint64(dims.SizeX()) || y >= uint64(dims.SizeY()) {
		return 0, 0, fmt.Errorf("tile %q outside %dx%d map: %w", s, dims.SizeX(), dims.SizeY(), tilemap.ErrOutOfBounds)
	}
	return uint32(x), uint32(y), nil
}

func printTile(out io.Writer, store *waterregion.Store, t tilemap.TileIndex) {
	p := store.PatchInfo(t)
	if !p.IsValid() {
		fmt.Fprintf(out, "tile %d: no water in region (%d,%d)\n", t, p.X, p.Y)
		return
	}

	fmt.Fprintf(out, "tile %d: patch %s hash=%#x\n", t, p, store.PatchHash(p))
	store.VisitPatchNeighbors(p, func(n waterregion.PatchDesc) {
		fmt.Fprintf(out, "  -> %s hash=%#x\n", n, store.PatchHash(n))
	})
}

func dump(ctx context.Context, out io.Writer, store *waterregion.Store) error {
	grid := store.Grid()
	for i := range grid.NumRegions() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, store.Region(grid.CoordOf(waterregion.Index(i))).DebugString())
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
