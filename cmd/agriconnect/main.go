package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shamsy-hassan/FSH-sub001/internal/client"
	"github.com/shamsy-hassan/FSH-sub001/internal/config"
	"github.com/shamsy-hassan/FSH-sub001/internal/controller"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
	"github.com/shamsy-hassan/FSH-sub001/internal/session"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := config.Init(); err != nil {
		logger.Fatal(ctx, err)
	}

	sess, err := session.Open(config.SessionPath())
	if err != nil {
		logger.Fatal(ctx, err)
	}
	c := client.New(config.BaseURL(), sess, client.WithTimeout(config.HTTPTimeout()))

	if err := run(ctx, c); err != nil {
		logger.Errorf(ctx, "%s", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client) error {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "login":
		if len(args) < 3 {
			return fmt.Errorf("usage: login <username> <password> [user_type]")
		}
		userType := constants.UserTypeUser
		if len(args) > 3 {
			userType = args[3]
		}
		resp, err := c.Auth.Login(ctx, args[1], args[2], userType)
		if err != nil {
			return err
		}
		account := resp.Account()
		if account != nil {
			fmt.Printf("logged in as %s (%s)\n", account.Username, resp.Type)
		}
		return nil

	case "logout":
		return c.Auth.Logout(ctx)

	case "market":
		return showMarket(ctx, c)

	case "saccos":
		return showSaccos(ctx, c)

	case "climate":
		return showClimate(ctx, c)

	case "dashboard":
		return showDashboard(ctx, c)

	case "watch":
		return watchMarket(ctx, c)

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println(`agriconnect <command>

commands:
  login <username> <password> [user_type]
  logout
  market       marketplace posts and derived stats
  saccos       cooperative directory
  climate      regions, weather, crop recommendations
  dashboard    overview for the current session
  watch        market view with background polling`)
}

func showMarket(ctx context.Context, c *client.Client) error {
	ctrl := controller.NewMarket(c.Market, config.PollInterval())
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	renderMarket(ctrl)
	return nil
}

func showSaccos(ctx context.Context, c *client.Client) error {
	ctrl := controller.NewSacco(c.Sacco, config.PollInterval())
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	renderSaccos(ctrl.Saccos())
	return nil
}

func showClimate(ctx context.Context, c *client.Client) error {
	ctrl := controller.NewAgroClimate(c.AgroClimate, config.PollInterval())
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	if ctrl.Empty() {
		fmt.Println("no regions configured")
		return nil
	}

	if _, err := ctrl.FetchWeather(ctx); err != nil {
		return err
	}
	if err := ctrl.FetchRecommendations(ctx); err != nil {
		return err
	}
	chart, err := ctrl.ChartData(ctx)
	if err != nil {
		return err
	}
	renderClimate(ctrl, chart)
	return nil
}

func showDashboard(ctx context.Context, c *client.Client) error {
	if c.Session().IsAdmin() {
		ctrl := controller.NewAdminBoard(c.Dashboard, config.PollInterval())
		if err := ctrl.Load(ctx); err != nil {
			return err
		}
		renderAdminBoard(ctrl)
		return nil
	}

	ctrl := controller.NewUserBoard(c.Dashboard, config.PollInterval())
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	renderUserBoard(ctrl.Overview())
	return nil
}

// watchMarket keeps the market controller polling until interrupted.
func watchMarket(ctx context.Context, c *client.Client) error {
	ctrl := controller.NewMarket(c.Market, config.PollInterval())
	ctrl.StartPolling(ctx)
	defer ctrl.Close()

	<-ctx.Done()
	renderMarket(ctrl)
	return nil
}
