// Package model defines Model: a bag of pieces and a bag of connections
// between them, the single input the assembly builder consumes. A Model has
// no pose and no derived geometry of its own — just the two containers,
// kept insertion-ordered where that matters.
package model

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/nichiyou-daiku/kernel/pkg/connection"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
	"github.com/nichiyou-daiku/kernel/pkg/lumber"
)

// ConnectionEntry is one (base_id, target_id) -> Connection entry of the
// model's insertion-ordered connection map.
type ConnectionEntry struct {
	BaseID     string                `json:"base_id"`
	TargetID   string                `json:"target_id"`
	Connection connection.Connection `json:"connection"`
}

// Model is a piece_id -> Piece mapping plus an insertion-ordered
// (base_id, target_id) -> Connection mapping — joint ids are a function of
// connection traversal order, so that order must be preserved exactly.
type Model struct {
	pieceOrder  []string
	pieces      map[string]lumber.Piece
	connections []ConnectionEntry
}

// New returns an empty Model.
func New() *Model {
	return &Model{pieces: make(map[string]lumber.Piece)}
}

// NewPieceID mints an opaque unique piece id, for callers that don't supply
// their own.
func NewPieceID() string {
	return "piece_" + uuid.NewString()
}

// AddPiece inserts p, keyed by p.ID. Rejects a duplicate id.
func (m *Model) AddPiece(p lumber.Piece) error {
	if _, exists := m.pieces[p.ID]; exists {
		return kerrors.DuplicatePieceID{ID: p.ID}
	}
	m.pieces[p.ID] = p
	m.pieceOrder = append(m.pieceOrder, p.ID)
	return nil
}

// Piece looks up a piece by id.
func (m *Model) Piece(id string) (lumber.Piece, bool) {
	p, ok := m.pieces[id]
	return p, ok
}

// PieceIDs returns piece ids in insertion order.
func (m *Model) PieceIDs() []string {
	out := make([]string, len(m.pieceOrder))
	copy(out, m.pieceOrder)
	return out
}

// Pieces returns every piece, in insertion order.
func (m *Model) Pieces() []lumber.Piece {
	out := make([]lumber.Piece, 0, len(m.pieceOrder))
	for _, id := range m.pieceOrder {
		out = append(out, m.pieces[id])
	}
	return out
}

// AddConnection appends a (baseID, targetID) -> conn entry. Both ids must
// already name a piece in the model.
func (m *Model) AddConnection(baseID, targetID string, conn connection.Connection) error {
	if _, ok := m.pieces[baseID]; !ok {
		return kerrors.UnknownPieceID{ID: baseID}
	}
	if _, ok := m.pieces[targetID]; !ok {
		return kerrors.UnknownPieceID{ID: targetID}
	}
	m.connections = append(m.connections, ConnectionEntry{BaseID: baseID, TargetID: targetID, Connection: conn})
	return nil
}

// Connections returns every connection entry in insertion order — the only
// order that matters for joint-id determinism.
func (m *Model) Connections() []ConnectionEntry {
	out := make([]ConnectionEntry, len(m.connections))
	copy(out, m.connections)
	return out
}

// canonicalModel is the JSON shape Canonical serialises: pieces sorted by id
// (piece insertion order carries no semantic weight — only connection order
// does) and connections in insertion order.
type canonicalModel struct {
	Pieces      []lumber.Piece    `json:"pieces"`
	Connections []ConnectionEntry `json:"connections"`
}

// Canonical returns a deterministic JSON encoding of m: byte-equal for two
// models with the same pieces and the same connections in the same
// insertion order, regardless of piece insertion order or map iteration.
func (m *Model) Canonical() ([]byte, error) {
	ids := make([]string, len(m.pieceOrder))
	copy(ids, m.pieceOrder)
	sortStrings(ids)

	pieces := make([]lumber.Piece, 0, len(ids))
	for _, id := range ids {
		pieces = append(pieces, m.pieces[id])
	}

	return json.Marshal(canonicalModel{Pieces: pieces, Connections: m.Connections()})
}

// sortStrings is a tiny insertion sort — the model's piece count is always
// small (a design's piece inventory, not a bulk dataset) so there is no
// reason to reach for anything fancier.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
