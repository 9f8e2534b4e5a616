package snake

// SelfCollision reports whether proposed hits the snake. It is evaluated
// before the head is committed, so the current tail still counts as
// occupied even though it would be vacated this tick.
func SelfCollision(b *Body, proposed Point) bool {
	return b.Occupies(proposed)
}

// FoodCollision reports whether the head lands on the food.
func FoodCollision(proposed, food Point) bool {
	return proposed == food
}
