package board

// Move is one of the four unit directions.
type Move uint8

// The four directions in expansion order.
const (
	Up Move = iota
	Down
	Left
	Right
)

// Moves lists all directions.
var Moves = [4]Move{Up, Down, Left, Right}

var moveNames = [4]string{"Up", "Down", "Left", "Right"}

var moveReverse = [4]Move{Down, Up, Right, Left}

var (
	moveRows = [4]int{-1, 1, 0, 0}
	moveCols = [4]int{0, 0, -1, 1}
)

func (m Move) dRow() int { return moveRows[m] }
func (m Move) dCol() int { return moveCols[m] }

// Reverse returns the opposite direction.
func (m Move) Reverse() Move { return moveReverse[m] }

func (m Move) String() string { return moveNames[m] }
