package storage

// EnrichTransactionFee derives TotalValue and, for non-coinbase transactions, the fee
// per denomination of TotalInput. A denomination missing from TotalOutput counts as zero.
func EnrichTransactionFee(tx Transaction, coinbase bool) Transaction {
	if coinbase {
		tx.TotalValue = copyValues(tx.TotalOutput)
		tx.Fee = nil
		return tx
	}

	tx.TotalValue = copyValues(tx.TotalInput)
	fee := make(Values, len(tx.TotalInput))
	for c, in := range tx.TotalInput {
		fee[c] = in - tx.TotalOutput[c]
	}
	tx.Fee = fee
	return tx
}

// MergeTags returns explicit tags followed by implicit ones, each marked with its
// provenance. Duplicates are kept.
func MergeTags(explicit, implicit []Tag) []Tag {
	out := make([]Tag, 0, len(explicit)+len(implicit))
	out = append(out, withProvenance(explicit, ProvenanceExplicit)...)
	return append(out, withProvenance(implicit, ProvenanceImplicit)...)
}

func withProvenance(tags []Tag, p Provenance) []Tag {
	out := make([]Tag, len(tags))
	for i, t := range tags {
		t.Type = p
		out[i] = t
	}
	return out
}

// InjectEgoRootStats overwrites balance and received of the subject node with fresh
// aggregate stats. Only "all" egonets are touched.
func InjectEgoRootStats(egonet EgoNetwork, direction Direction, stats Stats) EgoNetwork {
	if direction != DirectionAll || len(egonet.Nodes) == 0 {
		return egonet
	}

	nodes := make([]EgoNode, len(egonet.Nodes))
	copy(nodes, egonet.Nodes)
	nodes[0].Received = stats.TotalReceived.Smallest()
	nodes[0].Balance = stats.Balance()
	egonet.Nodes = nodes
	return egonet
}

// DropSelfLoops removes edges pointing back at their source.
func DropSelfLoops(egonet EgoNetwork) EgoNetwork {
	edges := make([]EgoEdge, 0, len(egonet.Edges))
	for _, e := range egonet.Edges {
		if e.Source != e.Target {
			edges = append(edges, e)
		}
	}
	egonet.Edges = edges
	return egonet
}

func copyValues(v Values) Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, n := range v {
		out[k] = n
	}
	return out
}
