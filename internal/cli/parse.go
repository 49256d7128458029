package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/algokit/maxflow"
)

// network is a flow problem ready to solve: the graph plus its
// terminal node ids.
type network struct {
	graph  *maxflow.Graph
	source int
	sink   int
}

// tomlNetwork mirrors the TOML file layout:
//
//	nodes  = 4
//	source = 0
//	sink   = 3
//
//	[[edge]]
//	from = 0
//	to   = 1
//	cap  = 10
type tomlNetwork struct {
	Nodes  int        `toml:"nodes"`
	Source int        `toml:"source"`
	Sink   int        `toml:"sink"`
	Edges  []tomlEdge `toml:"edge"`
}

type tomlEdge struct {
	From int   `toml:"from"`
	To   int   `toml:"to"`
	Cap  int64 `toml:"cap"`
}

// loadNetwork reads a network description from path, picking the
// format by extension: .toml files are decoded as TOML, everything
// else as a plain-text edge list.
func loadNetwork(path string) (*network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(path), ".toml") {
		return parseTOML(data)
	}

	return parseEdgeList(strings.NewReader(string(data)))
}

// parseEdgeList reads the plain-text format: a header line `n s t`
// (node count, source id, sink id) followed by one `u v cap` triple
// per line until EOF. Blank lines and #-comments are skipped.
func parseEdgeList(r io.Reader) (*network, error) {
	sc := bufio.NewScanner(r)

	line, lineNo, err := nextLine(sc, 0)
	if err != nil {
		return nil, fmt.Errorf("missing header line: %w", err)
	}

	var n, s, t int
	if _, err := fmt.Sscanf(line, "%d %d %d", &n, &s, &t); err != nil {
		return nil, fmt.Errorf("line %d: bad header %q: %w", lineNo, line, err)
	}

	g, err := maxflow.NewGraph(n)
	if err != nil {
		return nil, err
	}
	if err := checkTerminals(n, s, t); err != nil {
		return nil, err
	}

	for {
		line, lineNo, err = nextLine(sc, lineNo)
		if err != nil {
			break // EOF
		}
		var u, v int
		var c int64
		if _, err := fmt.Sscanf(line, "%d %d %d", &u, &v, &c); err != nil {
			return nil, fmt.Errorf("line %d: bad edge %q: %w", lineNo, line, err)
		}
		if err := g.AddEdge(u, v, c); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &network{graph: g, source: s, sink: t}, nil
}

// parseTOML decodes a TOML network description.
func parseTOML(data []byte) (*network, error) {
	var nf tomlNetwork
	if err := toml.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	g, err := maxflow.NewGraph(nf.Nodes)
	if err != nil {
		return nil, err
	}
	if err := checkTerminals(nf.Nodes, nf.Source, nf.Sink); err != nil {
		return nil, err
	}
	for i, e := range nf.Edges {
		if err := g.AddEdge(e.From, e.To, e.Cap); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return &network{graph: g, source: nf.Source, sink: nf.Sink}, nil
}

// nextLine advances to the next non-blank, non-comment line.
func nextLine(sc *bufio.Scanner, lineNo int) (string, int, error) {
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return line, lineNo, nil
	}

	return "", lineNo, io.EOF
}

// checkTerminals validates source and sink ids against the node count.
func checkTerminals(n, s, t int) error {
	if s < 0 || s >= n {
		return fmt.Errorf("source id %d out of range [0, %d)", s, n)
	}
	if t < 0 || t >= n {
		return fmt.Errorf("sink id %d out of range [0, %d)", t, n)
	}
	if s == t {
		return fmt.Errorf("source and sink are both node %d", s)
	}

	return nil
}
