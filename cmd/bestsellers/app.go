package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"bestsellers/internal/catalog"
	"bestsellers/internal/config"
	"bestsellers/internal/dataset"
	"bestsellers/internal/ingest"
	"bestsellers/internal/selfcheck"
	"bestsellers/internal/shell"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// averages and percentages are printed as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type app struct {
	cfg    *config.Config
	loader *ingest.Loader
}

func newApp(cfg *config.Config, logger *slog.Logger, in io.Reader, out, errOut io.Writer) *cli.App {
	a := &app{cfg: cfg, loader: ingest.NewLoader(logger)}

	authorFlag := &cli.StringFlag{Name: "author", Aliases: []string{"a"}, Usage: "author name, matched ignoring case", Required: true}

	return &cli.App{
		Name:      "bestsellers",
		Usage:     "query the Amazon bestselling books dataset",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Usage: "path to the dataset CSV", Value: cfg.DatasetPath},
			&cli.BoolFlag{Name: "json", Usage: "print results as JSON"},
		},
		Action: a.menu,
		Commands: []*cli.Command{
			{Name: "menu", Usage: "interactive numbered menu (default)", Action: a.menu},
			{Name: "selfcheck", Usage: "run the canned queries and report", Action: a.selfCheck},
			{Name: "count", Usage: "count books by an author", Flags: []cli.Flag{authorFlag}, Action: a.count},
			{Name: "authors", Usage: "list all distinct authors", Action: a.authors},
			{Name: "books", Usage: "list books by an author", Flags: []cli.Flag{authorFlag}, Action: a.books},
			{
				Name:   "rating",
				Usage:  "list books with an exact user rating",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "value", Aliases: []string{"r"}, Usage: "rating such as 4.7", Required: true}},
				Action: a.rating,
			},
			{Name: "prices", Usage: "list prices of an author's books", Flags: []cli.Flag{authorFlag}, Action: a.prices},
			{Name: "stats", Usage: "dataset statistics", Action: a.stats},
		},
	}
}

func (a *app) open(c *cli.Context) (*dataset.Dataset, error) {
	path := c.String("data")
	books, _, err := a.loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(books)
	if err != nil {
		return nil, fmt.Errorf("no books loaded from %s: %w", path, err)
	}
	return ds, nil
}

func (a *app) service(c *cli.Context) (*catalog.Service, error) {
	ds, err := a.open(c)
	if err != nil {
		return nil, err
	}
	return catalog.NewService(ds), nil
}

// emit prints v as JSON when --json is set, otherwise calls text.
func emit(c *cli.Context, v any, text func(io.Writer)) error {
	w := c.App.Writer
	if !c.Bool("json") {
		text(w)
		return nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func (a *app) menu(c *cli.Context) error {
	ds, err := a.open(c)
	if err != nil {
		return err
	}
	shell.Banner(c.App.Writer, ds.Len())
	return shell.New(catalog.NewService(ds), c.App.Reader, c.App.Writer).Run(c.Context)
}

func (a *app) selfCheck(c *cli.Context) error {
	svc, err := a.service(c)
	if err != nil {
		return err
	}
	sc := selfcheck.DefaultScenario()
	sc.AuthorLimit = a.cfg.SelfCheck.AuthorListLimit
	sc.RatingLimit = a.cfg.SelfCheck.RatingPreviewLimit

	result := selfcheck.NewDriver(svc, sc).Run()
	if err := emit(c, result, result.Render); err != nil {
		return err
	}
	if !result.Passed() {
		return errors.New("self-check failed")
	}
	return nil
}

func (a *app) count(c *cli.Context) error {
	svc, err := a.service(c)
	if err != nil {
		return err
	}
	name := c.String("author")
	n := svc.CountBooksByAuthor(name)
	return emit(c, map[string]any{"author": name, "count": n}, func(w io.Writer) {
		shell.RenderCount(w, name, n)
	})
}

func (a *app) authors(c *cli.Context) error {
	svc, err := a.service(c)
	if err != nil {
		return err
	}
	list := svc.ListAuthors()
	return emit(c, list, func(w io.Writer) { shell.RenderAuthors(w, list) })
}

func (a *app) books(c *cli.Context) error {
	svc, err := a.service(c)
	if err != nil {
		return err
	}
	name := c.String("author")
	books := svc.BooksByAuthor(name)
	return emit(c, books, func(w io.Writer) { shell.RenderBooks(w, name, books) })
}

func (a *app) rating(c *cli.Context) error {
	svc, err := a.service(c)
	if err != nil {
		return err
	}
	rc, err := svc.ClassifyByRating(c.String("value"))
	if err != nil {
		return err
	}
	return emit(c, rc, func(w io.Writer) { shell.RenderRatingClass(w, rc) })
}

func (a *app) prices(c *cli.Context) error {
	svc, err := a.service(c)
	if err != nil {
		return err
	}
	name := c.String("author")
	summary := catalog.SummarizePrices(svc.PricesByAuthor(name))
	return emit(c, summary, func(w io.Writer) { shell.RenderPrices(w, name, summary) })
}

func (a *app) stats(c *cli.Context) error {
	svc, err := a.service(c)
	if err != nil {
		return err
	}
	st := svc.Statistics()
	return emit(c, st, func(w io.Writer) { shell.RenderStats(w, st) })
}
