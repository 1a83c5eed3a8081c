package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SmallestUnit is the denomination key carrying integer on-chain amounts.
const SmallestUnit = "satoshi"

// Values maps a denomination (satoshi, eur, usd) to an amount.
type Values map[string]float64

// Smallest returns the on-chain amount, zero when absent.
func (v Values) Smallest() Amount {
	return Amount(v[SmallestUnit])
}

// Amount is an integer amount in the smallest currency unit. The backend sends it
// either as a bare number or as a Values object; both decode to the satoshi figure.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '{' {
		var v Values
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = v.Smallest()
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("[storage] invalid amount %s: %w", data, err)
	}
	*a = Amount(f)
	return nil
}

func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

// Stats are the aggregate flows of an address or cluster.
type Stats struct {
	TotalReceived Values `json:"totalReceived"`
	TotalSpent    Values `json:"totalSpent"`
}

// Balance is received minus spent in the smallest unit.
func (s Stats) Balance() Amount {
	return s.TotalReceived.Smallest() - s.TotalSpent.Smallest()
}

type TxRef struct {
	Height    int64  `json:"height"`
	TxHash    string `json:"txHash"`
	Timestamp int64  `json:"timestamp"`
}

type Address struct {
	Address       string `json:"address"`
	FirstTx       TxRef  `json:"firstTx"`
	LastTx        TxRef  `json:"lastTx"`
	NoIncomingTxs int64  `json:"noIncomingTxs"`
	NoOutgoingTxs int64  `json:"noOutgoingTxs"`
	InDegree      int64  `json:"inDegree"`
	OutDegree     int64  `json:"outDegree"`
	Balance       Values `json:"balance,omitempty"`
	Stats

	Tags    *AddressTags `json:"tags,omitempty"`
	Cluster *Cluster     `json:"cluster,omitempty"`
}

// AddressTags keeps both tag provenances apart for the address view.
type AddressTags struct {
	Explicit []Tag `json:"explicit"`
	Implicit []Tag `json:"implicit"`
}

type AddressTransaction struct {
	TxHash    string `json:"txHash"`
	Height    int64  `json:"height"`
	Timestamp int64  `json:"timestamp"`
	Value     Values `json:"value"`
}

type TxValue struct {
	Address string `json:"address"`
	Value   Values `json:"value"`
}

type Transaction struct {
	TxHash      string    `json:"txHash"`
	Height      int64     `json:"height"`
	Timestamp   int64     `json:"timestamp"`
	Coinbase    bool      `json:"coinbase"`
	NoInputs    int64     `json:"noInputs"`
	NoOutputs   int64     `json:"noOutputs"`
	Inputs      []TxValue `json:"inputs,omitempty"`
	Outputs     []TxValue `json:"outputs,omitempty"`
	TotalInput  Values    `json:"totalInput"`
	TotalOutput Values    `json:"totalOutput"`

	TotalValue Values `json:"totalValue,omitempty"`
	Fee        Values `json:"fee,omitempty"`
}

type Block struct {
	Height         int64  `json:"height"`
	BlockHash      string `json:"blockHash"`
	NoTransactions int64  `json:"noTransactions"`
	Timestamp      int64  `json:"timestamp"`
}

type BlockTransactions struct {
	Height int64         `json:"height"`
	Txs    []Transaction `json:"txs"`
}

type Cluster struct {
	Cluster     json.Number `json:"cluster"`
	NoAddresses int64       `json:"noAddresses"`
	FirstTx     TxRef       `json:"firstTx"`
	LastTx      TxRef       `json:"lastTx"`
	InDegree    int64       `json:"inDegree"`
	OutDegree   int64       `json:"outDegree"`
	Stats
}

// Provenance says whether a tag was attached to the address itself or inferred
// through its cluster.
type Provenance string

const (
	ProvenanceExplicit Provenance = "explicit"
	ProvenanceImplicit Provenance = "implicit"
)

type Tag struct {
	Address string     `json:"address"`
	Tag     string     `json:"tag"`
	TagURI  string     `json:"tagUri"`
	Source  string     `json:"source"`
	Type    Provenance `json:"type,omitempty"`
}

type EgoNode struct {
	ID       string `json:"id"`
	NodeType string `json:"nodeType,omitempty"`
	Balance  Amount `json:"balance"`
	Received Amount `json:"received"`
}

type EgoEdge struct {
	Source         string `json:"source"`
	Target         string `json:"target"`
	Transactions   int64  `json:"transactions"`
	EstimatedValue Amount `json:"estimatedValue"`
}

// EgoNetwork is the neighbourhood of a subject; Nodes[0] is the subject itself.
type EgoNetwork struct {
	Nodes []EgoNode `json:"nodes"`
	Edges []EgoEdge `json:"edges"`
}

type SearchResult struct {
	Addresses    []string `json:"addresses"`
	Transactions []string `json:"transactions"`
}

type CurrencyStatistics struct {
	NoBlocks       int64 `json:"noBlocks"`
	NoAddresses    int64 `json:"noAddresses"`
	NoClusters     int64 `json:"noClusters"`
	NoTransactions int64 `json:"noTransactions"`
	NoTags         int64 `json:"noTags"`
	Timestamp      int64 `json:"timestamp"`
}

// Statistics is keyed by currency.
type Statistics map[string]CurrencyStatistics
