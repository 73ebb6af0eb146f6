package main

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/atmoshq/weatherdesk/bootstrap"
	"github.com/atmoshq/weatherdesk/config"
	"github.com/atmoshq/weatherdesk/errs"
	"github.com/atmoshq/weatherdesk/log"
	"github.com/atmoshq/weatherdesk/tools"
)

// request is one line of the stdio protocol: a tool name plus its raw
// arguments. Responses are the dispatcher's envelope, one per line.
type request struct {
	Tool string                 `json:"tool"`
	Args map[string]interface{} `json:"args"`
}

func main() {
	// Load .env if present
	_ = godotenv.Load()

	log.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(context.Background(), "Failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Failed to initialize: %v", err)
	}
	defer app.Close()

	log.Infof(ctx, "weatherdesk ready: %d tools registered, archive backend %q",
		len(app.Registry.GetTools()), cfg.Archive.Backend)

	serve(ctx, app)
}

// serve reads one JSON request per stdin line and writes one envelope
// per stdout line until EOF or shutdown.
func serve(ctx context.Context, app *bootstrap.App) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			log.Infof(ctx, "Shutting down")
			return
		default:
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			_ = enc.Encode(tools.Fail(errs.Wrap(errs.InvalidParameters, "request is not valid JSON", err)))
			continue
		}

		resp := app.Dispatcher.Call(ctx, req.Tool, req.Args)
		if err := enc.Encode(resp); err != nil {
			log.Errorf(ctx, "Failed to write response: %v", err)
			return
		}
	}

	if err := scanner.Err(); err != nil {
		log.Errorf(ctx, "Input error: %v", err)
	}
}
