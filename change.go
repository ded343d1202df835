package main

// Coins is a breakdown of an amount into US coins.
type Coins struct {
	Quarters int
	Dimes    int
	Nickels  int
	Pennies  int
}

func (c Coins) Cents() int {
	return 25*c.Quarters + 10*c.Dimes + 5*c.Nickels + c.Pennies
}

func (c Coins) Total() int {
	return c.Quarters + c.Dimes + c.Nickels + c.Pennies
}

// Decompose truncates amount*100 to whole cents, dropping any fraction left
// over by the float conversion, and breaks them into coins.
func Decompose(amount float64) Coins {
	return DecomposeCents(int(amount * 100))
}

// DecomposeCents is greedy over 25, 10, 5, 1.
func DecomposeCents(cents int) Coins {
	var c Coins
	c.Quarters = cents / 25
	cents %= 25
	c.Dimes = cents / 10
	cents %= 10
	c.Nickels = cents / 5
	cents %= 5
	c.Pennies = cents
	return c
}
