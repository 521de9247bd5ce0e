package cmd

import (
	"flag"

	"github.com/etnz/folio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion. global holds
// the global flags, already set by SetFlags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(commands)),
		Flags: predictFlags(global),
	}
	for _, sc := range commands {
		f := flag.NewFlagSet(sc.cmd.Name(), flag.ContinueOnError)
		sc.cmd.SetFlags(f)
		root.Sub[sc.cmd.Name()] = &complete.Command{Flags: predictFlags(f)}
	}
	root.Sub["topic"].Args = predict.Set(append(docs.Topics(), docs.All))
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		flags[fl.Name] = predictFlag(fl)
	})
	return flags
}

func predictFlag(fl *flag.Flag) complete.Predictor {
	switch fl.Name {
	case "prices":
		return predict.Files("*")
	case "portfolio":
		return predict.Files("*.csv")
	case "price-column":
		return predict.Set{"Price", "Currentprice"}
	case "currency":
		return predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"}
	}
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}
