// Command arlib computes alternative s->t routes in a weighted directed
// graph loaded from a .gr file, using the OnePass+ search engine.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ashishkashinath/arlib/graph"
	"github.com/ashishkashinath/arlib/onepass"
	"github.com/ashishkashinath/arlib/path"
)

var (
	graphFile = pflag.StringP("graph-file", "f", "", "path to the .gr graph file (required)")
	source    = pflag.IntP("source", "S", -1, "source vertex (required)")
	dest      = pflag.IntP("destination", "D", -1, "destination vertex (required)")
	kPaths    = pflag.IntP("k-paths", "k", 0, "number of alternative paths to find (required)")
	theta     = pflag.Float64P("similarity-threshold", "s", -1, "similarity threshold in [0, 1] (required)")
	verbose   = pflag.BoolP("verbose", "v", false, "enable debug logging")

	requiredFlags = []string{"graph-file", "source", "destination", "k-paths", "similarity-threshold"}
)

func main() {
	pflag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if name := firstMissingFlag(pflag.CommandLine, requiredFlags); name != "" {
		fmt.Fprintf(os.Stdout, "arlib: missing argument: --%s\n", name)
		os.Exit(1)
	}

	if *source < 0 || *dest < 0 {
		fmt.Fprintln(os.Stdout, "arlib: --source and --destination must be >= 0")
		os.Exit(1)
	}

	if err := run(*graphFile, *source, *dest, *kPaths, *theta); err != nil {
		fmt.Fprintf(os.Stdout, "arlib: %v\n", err)
		os.Exit(1)
	}
}

// firstMissingFlag returns the name of the first flag in names that the
// user never set on the command line (pflag tracks this as Flag.Changed,
// distinct from a flag merely holding its zero value), or "" if all were
// set.
func firstMissingFlag(fs *pflag.FlagSet, names []string) string {
	for _, name := range names {
		if !fs.Lookup(name).Changed {
			return name
		}
	}

	return ""
}

func run(graphFile string, source, dest, k int, theta float64) error {
	log.WithFields(log.Fields{
		"graph-file": graphFile,
		"source":     source,
		"destination": dest,
		"k":          k,
		"theta":      theta,
	}).Debug("arlib: starting search")

	g, err := graph.ParseGR[int64](graphFile)
	if err != nil {
		return fmt.Errorf("loading graph: %w", err)
	}
	log.WithFields(log.Fields{
		"vertices": g.NumVertices(),
		"edges":    g.NumEdges(),
	}).Debug("arlib: graph loaded")

	paths, err := onepass.Search[int64](g, source, dest, k, theta)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	printPaths(os.Stdout, paths, source)

	return nil
}

func printPaths(w *os.File, paths []path.Path[int64], source int) {
	if len(paths) == 0 {
		fmt.Fprintln(w, "no paths found")

		return
	}

	for i, p := range paths {
		fmt.Fprintf(w, "path %d (length %d):", i, p.Length)
		for _, v := range p.Vertices(source) {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintln(w)
	}
}
