package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "hivectl"
	app.Usage = "Operate the Hive MSP engine"
	app.Action = cli.ShowAppHelp
	app.Commands = []*cli.Command{
		{
			Action:      issueToken,
			Name:        "token",
			Usage:       "Issue a signed access token",
			Category:    "Auth",
			Description: `Signs a JWT with JWT_SECRET, e.g. for an admin calling /api/admin.`,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "secret", EnvVars: []string{"JWT_SECRET"}, Required: true},
				&cli.StringFlag{Name: "user-id", Usage: "subject UUID, random when empty"},
				&cli.StringFlag{Name: "username", Required: true},
				&cli.StringFlag{Name: "role", Value: "user", Usage: "user or admin"},
				&cli.IntFlag{Name: "followers", Usage: "verified follower count of the user's account"},
				&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
			},
		},
		{
			Action:      runTracking,
			Name:        "track",
			Usage:       "Run one tracking cycle",
			Category:    "Scoring",
			Description: `Polls discovery once for every active campaign, or for a single campaign.`,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "campaign", Usage: "campaign UUID, all active campaigns when empty"},
			},
		},
		{
			Action:      recompute,
			Name:        "recompute",
			Usage:       "Rebuild participant totals from the ledger",
			Category:    "Scoring",
			Description: `Recomputes totals and ranks. With --dry-run only the differences are printed.`,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "campaign", Usage: "campaign UUID, every campaign when empty"},
				&cli.BoolFlag{Name: "dry-run"},
			},
		},
		{
			Action:      rescore,
			Name:        "rescore",
			Usage:       "Re-run the MSP calculator over stored posts",
			Category:    "Scoring",
			Description: `Backfills post scores after a policy change, then recomputes affected campaigns.`,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "campaign", Usage: "campaign UUID, every campaign when empty"},
				&cli.BoolFlag{Name: "dry-run"},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
