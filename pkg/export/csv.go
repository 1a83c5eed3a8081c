// Package export flattens storage resources into CSV downloads with fixed column orders.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"graphsense-dashboard/pkg/storage"
)

const (
	AddressIDColumn = "address"
	ClusterIDColumn = "clusterId"
)

var (
	edgeHeader = []string{"source", "target", "transactions", "estimatedValue"}
	tagHeader  = []string{"address", "comment", "link", "source"}
)

// EgonetNodes writes one row per node under an id column named idColumn.
func EgonetNodes(idColumn string, nodes []storage.EgoNode) ([]byte, error) {
	rows := make([][]string, 0, len(nodes)+1)
	rows = append(rows, []string{idColumn, "balance", "received"})
	for _, n := range nodes {
		rows = append(rows, []string{n.ID, n.Balance.String(), n.Received.String()})
	}
	return write(rows)
}

func EgonetEdges(edges []storage.EgoEdge) ([]byte, error) {
	rows := make([][]string, 0, len(edges)+1)
	rows = append(rows, edgeHeader)
	for _, e := range edges {
		rows = append(rows, []string{
			e.Source,
			e.Target,
			strconv.FormatInt(e.Transactions, 10),
			e.EstimatedValue.String(),
		})
	}
	return write(rows)
}

func Tags(tags []storage.Tag) ([]byte, error) {
	rows := make([][]string, 0, len(tags)+1)
	rows = append(rows, tagHeader)
	for _, t := range tags {
		rows = append(rows, []string{t.Address, t.Tag, t.TagURI, t.Source})
	}
	return write(rows)
}

// write renders rows without the trailing line break.
func write(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\r\n"), nil
}
