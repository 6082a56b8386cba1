package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/zephyrtronium/eos"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, mats, table string
		x                         float64
		frac, echo                bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "scalar result formatting string")
	flag.Float64Var(&x, "x", 0, "value of the free variable X")
	flag.StringVar(&mats, "matrices", "", "YAML file of matrices to store in slots A through J")
	flag.StringVar(&table, "table", "", "start:stop:step range of X to tabulate each expression over")
	flag.BoolVar(&frac, "frac", false, "print scalar results as fractions")
	flag.BoolVar(&echo, "echo", false, "print expressions in postfix form")
	flag.Parse()

	store := eos.NewStore()
	if mats != "" {
		if err := loadMatrices(store, mats); err != nil {
			log.Fatal(err)
		}
	}
	var xs []float64
	if table != "" {
		var err error
		xs, err = xrange(table)
		if err != nil {
			log.Fatal(err)
		}
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var p []*eos.Expr
	for _, in := range ins {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			toks, err := eos.ScanString(line)
			if err != nil {
				log.Fatal(err)
			}
			a, err := eos.Compile(toks)
			if err != nil {
				log.Fatal(err)
			}
			p = append(p, a)
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	pr := printer{verb: verb + "\n", frac: frac}
	ctx := eos.NewContext(eos.WithStore(store), eos.SetX(x))
	for _, a := range p {
		if echo {
			fmt.Printf("%v : ", a)
		}
		if xs == nil {
			pr.print(ctx.Eval(a), ctx.Err())
			continue
		}
		fmt.Println()
		for _, x := range xs {
			fmt.Printf("%-12g", x)
			pr.print(ctx.SetX(x).Eval(a), ctx.Err())
		}
	}
}

type printer struct {
	verb string
	frac bool
}

func (p printer) print(v eos.Value, err error) {
	if err != nil {
		fmt.Printf("ERR:%s: %v\n", eos.ErrorKind(err), err)
		return
	}
	switch v := v.(type) {
	case eos.Scalar:
		if p.frac {
			if s := eos.Fraction(float64(v)); s != "" {
				fmt.Println(s)
				return
			}
		}
		fmt.Printf(p.verb, float64(v))
	case *eos.Matrix:
		fmt.Println(v)
	}
}

// xrange parses start:stop:step into the values from start to stop inclusive.
func xrange(s string) ([]float64, error) {
	f := strings.Split(s, ":")
	if len(f) != 3 {
		return nil, fmt.Errorf(`table range must be "start:stop:step", not %q`, s)
	}
	var v [3]float64
	for i, t := range f {
		r, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, fmt.Errorf("table range %q: %w", s, err)
		}
		v[i] = r
	}
	start, stop, step := v[0], v[1], v[2]
	if step <= 0 || stop < start {
		return nil, fmt.Errorf("table range %q is empty", s)
	}
	var xs []float64
	for i := 0; ; i++ {
		x := start + float64(i)*step
		if x > stop+step*1e-9 {
			break
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
