package square

// Diagonal identifies one of the 15 NE-SW diagonals of the board by the
// value (rank - file + 7), so it ranges over 0..14.
type Diagonal int8

// AntiDiagonal identifies one of the 15 NW-SE anti-diagonals of the
// board by the value (rank + file), so it ranges over 0..14.
type AntiDiagonal int8

// DiagonalN and AntiDiagonalN are the number of diagonals/anti-diagonals.
const DiagonalN = 15
const AntiDiagonalN = 15
