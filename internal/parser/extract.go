package parser

import (
	"encoding/json"
	"fmt"
)

// ExtractOptions configures extraction behavior
type ExtractOptions struct {
	// SeedBoundsFromData: if true, seed the bounding box from the first
	// observed coordinate instead of zero (see Extent)
	// Default: false (zero-seeded, source-compatible)
	SeedBoundsFromData bool

	// ValidateGeometry: if true, reject non-finite coordinates and check
	// ring invariants
	// Default: true
	ValidateGeometry bool
}

// DefaultExtractOptions returns extract options with defaults
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		SeedBoundsFromData: false,
		ValidateGeometry:   true,
	}
}

// Extract decodes an IndoorGML JSON document and builds the normalized
// navigation/geometry model.
//
// The document follows the fixed single-layer, single-graph shape produced
// by IndoorGML XML→JSON conversion: one space layer under
// multiLayeredGraph, and the primal space features (cell spaces and their
// boundaries) under primalSpaceFeatures. Any deviation from that shape
// yields ErrMalformedDocument naming the failing path; no partial model is
// returned.
func Extract(data []byte, opts ExtractOptions) (*Model, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return ExtractDocument(doc, opts)
}

// ExtractDocument builds the model from an already-decoded JSON value.
func ExtractDocument(doc interface{}, opts ExtractOptions) (*Model, error) {
	ext := NewExtent()
	if opts.SeedBoundsFromData {
		ext = NewSeededExtent()
	}

	// Single space layer, assumed at index 0 throughout.
	layer, layerPath, err := requiredObject(doc, "",
		"multiLayeredGraph", "spaceLayers[0]", "spaceLayerMember[0]", "spaceLayer")
	if err != nil {
		return nil, err
	}

	model := &Model{}

	model.Nodes, err = extractNodes(layer, layerPath, ext, opts)
	if err != nil {
		return nil, err
	}

	model.Edges, err = extractEdges(layer, layerPath, ext, opts)
	if err != nil {
		return nil, err
	}

	primal, primalPath, err := requiredObject(doc, "",
		"primalSpaceFeatures", "primalSpaceFeatures")
	if err != nil {
		return nil, err
	}

	model.CellSpaces, err = extractCellSpaces(primal, primalPath, ext, opts)
	if err != nil {
		return nil, err
	}

	model.CellSpaceBoundaries, err = extractCellSpaceBoundaries(primal, primalPath, ext, opts)
	if err != nil {
		return nil, err
	}

	model.Extent = *ext
	model.CenterX = ext.CenterX()
	model.CenterY = ext.CenterY()

	return model, nil
}

// extractNodes reads the navigation graph states: one Point per stateMember.
func extractNodes(layer map[string]interface{}, layerPath string, ext *Extent, opts ExtractOptions) ([]Point, error) {
	members, path, err := requiredArray(layer, layerPath, "nodes[0]", "stateMember")
	if err != nil {
		return nil, err
	}

	nodes := make([]Point, 0, len(members))
	for i, member := range members {
		memberPath := fmt.Sprintf("%s[%d]", path, i)
		pos, posPath, err := descend(member, memberPath, "state", "geometry", "point", "pos", "value")
		if err != nil {
			return nil, err
		}
		x, y, z, err := coordTriple(pos, posPath)
		if err != nil {
			return nil, err
		}
		if opts.ValidateGeometry {
			if err := validateTriple(posPath, x, y, z); err != nil {
				return nil, err
			}
		}
		ext.Observe(x, y, z)
		nodes = append(nodes, Point{X: x, Y: y, Z: z})
	}
	return nodes, nil
}

// extractEdges reads the navigation graph transitions: connected node
// references, optional description, and the 3D path geometry.
func extractEdges(layer map[string]interface{}, layerPath string, ext *Extent, opts ExtractOptions) ([]Edge, error) {
	members, path, err := requiredArray(layer, layerPath, "edges[0]", "transitionMember")
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, len(members))
	for i, member := range members {
		memberPath := fmt.Sprintf("%s[%d]", path, i)
		transition, transitionPath, err := requiredObject(member, memberPath, "transition")
		if err != nil {
			return nil, err
		}

		connects, connectsPath, err := requiredArray(transition, transitionPath, "connects")
		if err != nil {
			return nil, err
		}
		edge := Edge{Connects: make([]string, 0, len(connects))}
		for j, entry := range connects {
			entryPath := fmt.Sprintf("%s[%d]", connectsPath, j)
			obj, _, err := requiredObject(entry, entryPath)
			if err != nil {
				return nil, err
			}
			href, err := requiredString(obj, entryPath, "href")
			if err != nil {
				return nil, err
			}
			edge.Connects = append(edge.Connects, href)
		}

		edge.Description = optionalText(transition, "description")

		reps, repsPath, err := requiredArray(transition, transitionPath,
			"geometry", "abstractCurve", "value", "posOrPointPropertyOrPointRep")
		if err != nil {
			return nil, err
		}
		edge.Path = make([]Point, 0, len(reps))
		for j, rep := range reps {
			repPath := fmt.Sprintf("%s[%d]", repsPath, j)
			pos, posPath, err := descend(rep, repPath, "value", "value")
			if err != nil {
				return nil, err
			}
			x, y, z, err := coordTriple(pos, posPath)
			if err != nil {
				return nil, err
			}
			if opts.ValidateGeometry {
				if err := validateTriple(posPath, x, y, z); err != nil {
					return nil, err
				}
			}
			ext.Observe(x, y, z)
			edge.Path = append(edge.Path, Point{X: x, Y: y, Z: z})
		}

		edges = append(edges, edge)
	}
	return edges, nil
}

// extractCellSpaces reads the solid cell-space features. Geometry branches
// on which of geometry3D/geometry2D is present; when both are, 3D wins and
// 2D is silently ignored.
func extractCellSpaces(primal map[string]interface{}, primalPath string, ext *Extent, opts ExtractOptions) ([]CellFeature, error) {
	members, path, err := requiredArray(primal, primalPath, "cellSpaceMember")
	if err != nil {
		return nil, err
	}

	features := make([]CellFeature, 0, len(members))
	for i, member := range members {
		memberPath := fmt.Sprintf("%s[%d]", path, i)
		feature, featurePath, err := requiredObject(member, memberPath, "abstractFeature", "value")
		if err != nil {
			return nil, err
		}

		cf := CellFeature{
			ID:          optionalString(feature, "id"),
			Description: optionalText(feature, "description"),
			Duality:     optionalRef(feature, "duality"),
		}

		if g3, ok := feature["geometry3D"].(map[string]interface{}); ok {
			g3Path := joinPath(featurePath, "geometry3D")
			surfaces, surfacesPath, err := requiredArray(g3, g3Path,
				"abstractSolid", "value", "exterior", "shell", "surfaceMember")
			if err != nil {
				return nil, err
			}
			cf.Rings = make([]SurfaceRing, 0, len(surfaces))
			for j, surface := range surfaces {
				surfacePath := fmt.Sprintf("%s[%d]", surfacesPath, j)
				exterior, exteriorPath, err := requiredObject(surface, surfacePath,
					"abstractSurface", "value", "exterior")
				if err != nil {
					return nil, err
				}
				ring, err := extractRing(exterior, exteriorPath, ext, opts)
				if err != nil {
					return nil, err
				}
				cf.Rings = append(cf.Rings, ring)
			}
		} else if g2, ok := feature["geometry2D"].(map[string]interface{}); ok {
			g2Path := joinPath(featurePath, "geometry2D")
			exterior, exteriorPath, err := requiredObject(g2, g2Path,
				"abstractSurface", "value", "exterior")
			if err != nil {
				return nil, err
			}
			ring, err := extractRing(exterior, exteriorPath, ext, opts)
			if err != nil {
				return nil, err
			}
			cf.Rings = []SurfaceRing{ring}
		}

		features = append(features, cf)
	}
	return features, nil
}

// extractCellSpaceBoundaries reads the boundary features (doors, shared
// wall faces). Geometry comes only from the 3D surface's exterior; each
// boundary carries exactly one ring, empty when the exterior is null.
func extractCellSpaceBoundaries(primal map[string]interface{}, primalPath string, ext *Extent, opts ExtractOptions) ([]CellFeature, error) {
	members, path, err := requiredArray(primal, primalPath, "cellSpaceBoundaryMember")
	if err != nil {
		return nil, err
	}

	features := make([]CellFeature, 0, len(members))
	for i, member := range members {
		memberPath := fmt.Sprintf("%s[%d]", path, i)
		feature, featurePath, err := requiredObject(member, memberPath, "abstractFeature", "value")
		if err != nil {
			return nil, err
		}

		cf := CellFeature{
			ID:          optionalString(feature, "id"),
			Description: optionalText(feature, "description"),
			Duality:     optionalRef(feature, "duality"),
		}

		ring := SurfaceRing{}
		if exterior, exteriorPath, ok := boundaryExterior(feature, featurePath); ok {
			ring, err = extractRing(exterior, exteriorPath, ext, opts)
			if err != nil {
				return nil, err
			}
		}
		cf.Rings = []SurfaceRing{ring}

		features = append(features, cf)
	}
	return features, nil
}

// boundaryExterior resolves geometry3D.abstractSurface.value.exterior on a
// boundary feature. A null anywhere on the chain means the boundary has no
// geometry; that is not an error.
func boundaryExterior(feature map[string]interface{}, featurePath string) (map[string]interface{}, string, bool) {
	g3, ok := feature["geometry3D"].(map[string]interface{})
	if !ok {
		return nil, "", false
	}
	surface, ok := g3["abstractSurface"].(map[string]interface{})
	if !ok {
		return nil, "", false
	}
	value, ok := surface["value"].(map[string]interface{})
	if !ok {
		return nil, "", false
	}
	exterior, ok := value["exterior"].(map[string]interface{})
	if !ok {
		return nil, "", false
	}
	return exterior, featurePath + ".geometry3D.abstractSurface.value.exterior", true
}

// extractRing flattens one polygon ring into consecutive coordinate
// triples, observing every triple into the extent.
func extractRing(exterior map[string]interface{}, exteriorPath string, ext *Extent, opts ExtractOptions) (SurfaceRing, error) {
	reps, repsPath, err := requiredArray(exterior, exteriorPath,
		"abstractRing", "value", "posOrPointPropertyOrPointRep")
	if err != nil {
		return nil, err
	}

	ring := make(SurfaceRing, 0, len(reps)*3)
	for j, rep := range reps {
		repPath := fmt.Sprintf("%s[%d]", repsPath, j)
		pos, posPath, err := descend(rep, repPath, "value", "value")
		if err != nil {
			return nil, err
		}
		x, y, z, err := coordTriple(pos, posPath)
		if err != nil {
			return nil, err
		}
		if opts.ValidateGeometry {
			if err := validateTriple(posPath, x, y, z); err != nil {
				return nil, err
			}
		}
		ext.Observe(x, y, z)
		ring = append(ring, x, y, z)
	}

	if opts.ValidateGeometry {
		if err := ValidateRing(exteriorPath, ring); err != nil {
			return nil, err
		}
	}
	return ring, nil
}
