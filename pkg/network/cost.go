package network

// Default unit costs per ton-km, used when the parameter table does not
// carry mode-specific values. Rail mobility is cheaper per ton-km, rail
// infrastructure dearer.
var (
	defaultMobilityCostTK = map[Mode]float64{
		Railway: 0.035,
		Roadway: 0.085,
	}
	defaultInfrastCostTK = map[Mode]float64{
		Railway: 0.012,
		Roadway: 0.004,
	}
)

// MobilityCost aggregates the movement cost of all od pairs: tons times
// path distance times the unit mobility cost of this mode. Pairs without an
// operable path contribute nothing.
func (n *Network) MobilityCost() float64 {
	unit := n.params.GetDefault(ParamMobilityCostTK, defaultMobilityCostTK[n.mode])

	var total float64
	for _, key := range n.odOrder {
		od := n.odPairs[key]
		if !od.HasPath() {
			continue
		}
		total += od.Tons * od.Distance * unit
	}
	return total
}

// InfrastructureCost aggregates the track/road cost of all links: total
// link load times link distance times the unit infrastructure cost of this
// mode.
func (n *Network) InfrastructureCost() float64 {
	unit := n.params.GetDefault(ParamInfrastCostTK, defaultInfrastCostTK[n.mode])

	var total float64
	for _, key := range n.linkOrder {
		l := n.links[key]
		total += l.Tons() * l.Distance * unit
	}
	return total
}

// Cost returns the total cost of this modal network
func (n *Network) Cost() float64 {
	return n.MobilityCost() + n.InfrastructureCost()
}
