package main

import (
	"context"

	"github.com/shamsy-hassan/FSH-sub001/internal/config"
	"github.com/shamsy-hassan/FSH-sub001/internal/mockapi"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
)

func main() {
	ctx := context.Background()
	if err := config.Init(); err != nil {
		logger.Fatal(ctx, err)
	}

	addr := config.MockAddr()
	logger.Infof(ctx, "mock backend listening on %s", addr)

	svc := mockapi.NewServer(config.JWTSecret())
	svc.Serve(addr)
}
