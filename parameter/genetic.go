package parameter

// Genetic Algorithm - Population
const (
	// GAPopulationSize is the number of candidates in each generation
	GAPopulationSize = 1020

	// GAFrameBudget is the number of frames each generation is simulated for
	// Also the length of every move sequence
	GAFrameBudget = 200

	// GAWorkers is the number of goroutines stepping candidates per frame (1 = sequential)
	GAWorkers = 1
)

// Genetic Algorithm - Operators
// Rates are percentages of the population, mutation is per-mille per frame
const (
	// GAMutationProbability is the per-frame chance (out of 1000) a child move is replaced
	GAMutationProbability = 10.0

	// GARetentionRate is the percentage of top candidates carried over unchanged
	GARetentionRate = 5.0

	// GAExplorationRate is the percentage of fresh random candidates per generation
	GAExplorationRate = 10.0

	// GAWeightScale is the upper bound of normalized sampling weights
	GAWeightScale = 100.0
)

// Genetic Algorithm - Fitness
const (
	// GAFitnessThreshold lifts every completed candidate above every incomplete one
	GAFitnessThreshold = 100000.0

	// GAFitnessStepWeight scales the remaining-frames terms of a completed run
	GAFitnessStepWeight = 20.0

	// GAFitnessDistanceScale is the numerator of the inverse-distance terms
	GAFitnessDistanceScale = 1000.0

	// GAFitnessKeyBase is the flat base of the key-speed term
	GAFitnessKeyBase = 10.0

	// GAFitnessKeyBonus separates key holders from the rest
	GAFitnessKeyBonus = 1000.0
)
