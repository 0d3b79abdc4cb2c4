// Package assembly implements the projection engine, per-kind joint
// constructors, and the assembly builder: the pipeline that turns a
// model.Model into a fully-resolved set of joints and pilot holes.
package assembly

import (
	"fmt"

	"github.com/nichiyou-daiku/kernel/pkg/connection"
	"github.com/nichiyou-daiku/kernel/pkg/geometry"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
	"github.com/nichiyou-daiku/kernel/pkg/lumber"
	"github.com/nichiyou-daiku/kernel/pkg/model"
)

// Hole describes a pilot hole: a cylindrical cut of the given diameter and
// depth, centered on a piece's surface point.
type Hole struct {
	Diameter float64 `json:"diameter"`
	Depth    float64 `json:"depth"`
}

// defaultPilotHole is the fixed pilot-hole shape used for every joint
// created under a Dowel or Screw connection.
var defaultPilotHole = Hole{Diameter: 3, Depth: 5}

// PilotHole is a 3D point on a piece's surface plus the hole to drill there.
type PilotHole struct {
	Point geometry.Point3D `json:"point"`
	Hole  Hole             `json:"hole"`
}

// JointPairIDs is one (base_joint_id, target_joint_id) entry of an
// Assembly's joint-pair list.
type JointPairIDs struct {
	BaseID   string `json:"base_id"`
	TargetID string `json:"target_id"`
}

// Assembly is the fully resolved output of the kernel: per-piece boxes, the
// flat joint map, the list of joint-id pairs, and per-piece pilot holes.
// Everything is a value; nowhere does one entity hold a pointer to another.
type Assembly struct {
	Boxes      map[string]geometry.Box `json:"boxes"`
	Joints     map[string]Joint        `json:"joints"`
	JointPairs []JointPairIDs          `json:"joint_pairs"`
	PilotHoles map[string][]PilotHole  `json:"pilot_holes"`
}

// Of builds an Assembly from a Model. It computes each piece's box, then
// walks model.Connections() in insertion order — the only thing that
// determines joint-id suffixes — allocating ids from a per-piece counter
// local to this call.
func Of(m *model.Model) (Assembly, error) {
	boxes := make(map[string]geometry.Box, len(m.PieceIDs()))
	for _, id := range m.PieceIDs() {
		p, ok := m.Piece(id)
		if !ok {
			return Assembly{}, kerrors.UnknownPieceID{ID: id}
		}
		box, err := lumber.Box(p)
		if err != nil {
			return Assembly{}, err
		}
		boxes[id] = box
	}

	counters := make(map[string]int)
	allocate := func(pieceID string) string {
		n := counters[pieceID]
		counters[pieceID] = n + 1
		return fmt.Sprintf("%s_j%d", pieceID, n)
	}

	joints := make(map[string]Joint)
	var pairs []JointPairIDs
	holes := make(map[string][]PilotHole)

	for _, entry := range m.Connections() {
		baseBox, ok := boxes[entry.BaseID]
		if !ok {
			return Assembly{}, kerrors.UnknownPieceID{ID: entry.BaseID}
		}
		targetBox, ok := boxes[entry.TargetID]
		if !ok {
			return Assembly{}, kerrors.UnknownPieceID{ID: entry.TargetID}
		}

		pairsForConn, err := jointPairsFor(entry.Connection)
		if err != nil {
			return Assembly{}, err
		}
		fastened := entry.Connection.Kind.Kind != connection.Vanilla

		for _, jp := range pairsForConn {
			baseID := allocate(entry.BaseID)
			targetID := allocate(entry.TargetID)
			joints[baseID] = jp.Base
			joints[targetID] = jp.Target
			pairs = append(pairs, JointPairIDs{BaseID: baseID, TargetID: targetID})

			if fastened {
				basePoint := baseBox.Point3DOfSurface(jp.Base.Position)
				targetPoint := targetBox.Point3DOfSurface(jp.Target.Position)
				holes[entry.BaseID] = append(holes[entry.BaseID], PilotHole{Point: basePoint, Hole: defaultPilotHole})
				holes[entry.TargetID] = append(holes[entry.TargetID], PilotHole{Point: targetPoint, Hole: defaultPilotHole})
			}
		}
	}

	return Assembly{Boxes: boxes, Joints: joints, JointPairs: pairs, PilotHoles: holes}, nil
}

// jointPairsFor dispatches a Connection to its kind's joint-placement policy.
func jointPairsFor(conn connection.Connection) ([]jointPair, error) {
	switch conn.Kind.Kind {
	case connection.Vanilla:
		return createVanillaJointPairs(conn.Base, conn.Target)
	case connection.Dowel, connection.Screw:
		return createFastenerJointPairs(conn.Base, conn.Target)
	default:
		return nil, fmt.Errorf("assembly: unknown connection kind %v", conn.Kind.Kind)
	}
}
