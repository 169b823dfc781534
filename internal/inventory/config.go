package inventory

import (
	"fmt"

	"github.com/iwvelando/gear-rental/internal/config"
	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/validation"
)

// FromConfig converts configured inventory nodes into an equipment tree.
// A single top-level node is returned as is; several are wrapped in a
// collection. An empty inventory yields nil.
func FromConfig(nodes []config.NodeConfig) (gear.Node, error) {
	switch len(nodes) {
	case 0:
		return nil, nil
	case 1:
		return NodeFromConfig(nodes[0])
	}
	children, err := childrenFromConfig(nodes)
	if err != nil {
		return nil, err
	}
	return gear.NewCollection(children...), nil
}

// NodeFromConfig converts one configured node and its children.
func NodeFromConfig(node config.NodeConfig) (gear.Node, error) {
	switch node.Kind {
	case constants.KindCamera:
		return gear.NewCamera(node.Brand, node.Price, node.SensorType, node.Resolution, node.DynamicRange), nil
	case constants.KindHighSpeed:
		return gear.NewHighSpeedCamera(node.Brand, node.Price, node.SensorType, node.Resolution, node.DynamicRange,
			node.FrameRate, node.WorkflowSolution), nil
	case constants.KindLens:
		return gear.NewLens(node.Brand, node.Price, node.LensType), nil
	case constants.KindCollection:
		children, err := childrenFromConfig(node.Children)
		if err != nil {
			return nil, err
		}
		return gear.NewCollection(children...), nil
	case constants.KindKit:
		children, err := childrenFromConfig(node.Children)
		if err != nil {
			return nil, fmt.Errorf("kit %q: %w", node.Name, err)
		}
		return gear.NewKit(node.Name, children...), nil
	default:
		return nil, fmt.Errorf("%w: unknown inventory kind %q", validation.ErrInvalidArgument, node.Kind)
	}
}

func childrenFromConfig(nodes []config.NodeConfig) ([]gear.Node, error) {
	children := make([]gear.Node, 0, len(nodes))
	for _, child := range nodes {
		n, err := NodeFromConfig(child)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return children, nil
}

// Load returns the tree described by the configuration, or the sample
// inventory when none is configured.
func Load(conf config.Configuration) (gear.Node, error) {
	root, err := FromConfig(conf.Inventory)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return Sample(), nil
	}
	return root, nil
}
