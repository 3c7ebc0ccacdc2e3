package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/joncooperworks/headerbrute"
	"github.com/urfave/cli/v2"
)

func actionHeaderBrute(c *cli.Context) error {
	httpClient := &http.Client{Timeout: c.Duration("timeout")}
	transport := &http.Transport{
		MaxIdleConnsPerHost: c.Int("pool-size"),
	}
	if c.Bool("skip-cert-verify") {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	httpClient.Transport = transport
	logger := log.New(os.Stdout, "headerbrute: ", log.Ldate|log.Ltime|log.Lshortfile)

	headers := http.Header{}
	if seed := c.String("seed-request"); seed != "" {
		var err error
		headers, err = headerbrute.HeadersFromFile(seed)
		if err != nil {
			return err
		}
	}

	config := &headerbrute.Config{
		URL:          c.String("url"),
		Alphabet:     c.String("alphabet"),
		MaxKeyLength: c.Int("max-length"),
		PoolSize:     c.Int("pool-size"),
		KeyHeader:    c.String("key-header"),
		FlagHeader:   c.String("flag-header"),
		FlagPrefix:   c.String("flag-prefix"),
		ExtraHeaders: headers,
		Client:       &headerbrute.Client{Client: httpClient},
		Logger:       logger,
		Reporters: []headerbrute.Reporter{
			&headerbrute.ConsoleReporter{Writer: color.Output, Color: !c.Bool("no-color")},
		},
	}

	err := config.Validate()
	if err != nil {
		return err
	}

	if c.Bool("count-only") {
		keyspace := &headerbrute.Keyspace{Alphabet: config.Alphabet}
		fmt.Println(keyspace.Total(config.MaxKeyLength))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bruteforcer := &headerbrute.Bruteforcer{Config: config}
	return bruteforcer.Run(ctx)
}

func main() {
	app := &cli.App{
		Name:   "headerbrute",
		Usage:  "brute force a short secret header value and report the flag it unlocks",
		Action: actionHeaderBrute,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Value: headerbrute.DefaultURL,
				Usage: "the URL every key is sent to",
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Value: headerbrute.DefaultAlphabet,
				Usage: "characters keys are built from",
			},
			&cli.IntFlag{
				Name:  "max-length",
				Value: headerbrute.DefaultMaxKeyLength,
				Usage: "longest key to try",
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Value: headerbrute.DefaultPoolSize,
				Usage: "number of requests in flight at once",
			},
			&cli.StringFlag{
				Name:  "key-header",
				Value: headerbrute.DefaultHeader,
				Usage: "request header the key is sent in",
			},
			&cli.StringFlag{
				Name:  "flag-header",
				Value: headerbrute.DefaultHeader,
				Usage: "response header checked for the flag",
			},
			&cli.StringFlag{
				Name:  "flag-prefix",
				Value: headerbrute.DefaultFlagPrefix,
				Usage: "prefix that marks a flag",
			},
			&cli.StringFlag{
				Name:     "seed-request",
				Required: false,
				Usage:    "HTTP request file whose headers are sent with every key",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "per-request timeout, 0 waits forever",
			},
			&cli.BoolFlag{
				Name:     "count-only",
				Required: false,
				Usage:    "don't send the requests, just count how many would be sent",
			},
			&cli.BoolFlag{
				Name:     "skip-cert-verify",
				Required: false,
				Value:    false,
				Usage:    "skip verifying SSL certificate when making requests",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "print matches without color",
			},
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
