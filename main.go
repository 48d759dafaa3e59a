// main.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/seehuhn/hwpmath/formula"
	"github.com/seehuhn/hwpmath/formula/cache"
	"github.com/seehuhn/hwpmath/formula/symbols"
	"github.com/seehuhn/hwpmath/hml"
	"github.com/seehuhn/hwpmath/xhtml"
)

var (
	to       = flag.String("to", "latex", "target notation, \"latex\" or \"notation\"")
	dialect  = flag.String("dialect", "hwp", "notation dialect, \"hwp\" or \"unicode\"")
	expr     = flag.String("e", "", "convert the given formula instead of reading input files")
	output   = flag.String("output", "", "write an XHTML page with the converted formulas to this file")
	failFast = flag.Bool("fail-fast", false, "stop at the first formula which cannot be converted")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(),
			"usage: hwpmath [flags] [-e formula | file.hml | file.hwpx | file.txt ...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	dir, err := formula.ParseDirection(*to)
	if err != nil {
		log.Fatal(err)
	}
	table := symbols.ForDialect(*dialect)
	if table == nil {
		log.Fatalf("unknown dialect %q", *dialect)
	}

	c := cache.New(table.Name())
	defer c.Close()
	conv := formula.New(table, &formula.Options{Cache: c})

	if *expr != "" {
		res, err := conv.Convert(*expr, dir)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res)
		return
	}

	var docs []*document
	if flag.NArg() == 0 {
		doc, err := readLines("stdin", os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		docs = append(docs, doc)
	}
	for _, fname := range flag.Args() {
		formulas, err := hml.ExtractFile(fname)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: %s formulas", fname, humanize.Comma(int64(len(formulas))))
		docs = append(docs, &document{Name: fname, Formulas: formulas})
	}

	var total, failed int
	var page *xhtml.Page
	if *output != "" {
		page = xhtml.NewPage(strings.Join(flag.Args(), "\x00"), pageTitle())
	}
	for _, doc := range docs {
		results, err := conv.ConvertBatch(doc.Formulas, dir, *failFast)
		if err != nil {
			log.Fatalf("%s: %s", doc.Name, err)
		}

		if page != nil {
			_, err = page.AddSection(1, doc.Name)
			if err != nil {
				log.Fatal(err)
			}
		}
		for i, res := range results {
			total++
			if res.Err != nil {
				failed++
				log.Printf("%s: formula %d: %s", doc.Name, i+1, res.Err)
				if page != nil {
					err = page.AddError(res.Input, res.Err)
				}
			} else if page != nil && dir == formula.ToLaTeX {
				_, err = page.AddFormula(res.Output, true)
			} else if page != nil {
				err = page.AddText(res.Output)
			} else {
				fmt.Println(res.Output)
			}
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	if page != nil {
		err = writePage(page, *output)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("wrote", *output)
	}

	log.Printf("converted %s of %s formulas",
		humanize.Comma(int64(total-failed)), humanize.Comma(int64(total)))
	if failed > 0 {
		os.Exit(1)
	}
}

type document struct {
	Name     string
	Formulas []string
}

// readLines reads one formula per line, skipping empty lines.
func readLines(name string, r io.Reader) (*document, error) {
	doc := &document{Name: name}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			doc.Formulas = append(doc.Formulas, line)
		}
	}
	return doc, scanner.Err()
}

func pageTitle() string {
	if flag.NArg() == 1 {
		return filepath.Base(flag.Arg(0))
	}
	return "Formulas"
}

func writePage(page *xhtml.Page, fname string) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = page.WriteTo(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
