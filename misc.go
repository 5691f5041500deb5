package neuralbackprop

// TrainUntil returns a function that satisfies TrainArgs.RunCondition, running for a fixed number
// of iterations.
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus
// 'frequency' is in units of iterations
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	if frequency < 1 {
		return func(int) bool { return false }
	}

	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
