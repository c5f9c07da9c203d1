package board

// Tutorial returns the state shown on first run: a handful of notes that
// explain the controls.
func Tutorial() State {
	return State{
		IDMax:     43,
		ZIndexMax: 60,
		Zoom:      1,
		Notes: []Note{
			{ID: 1, X: 16, Y: 4, ZIndex: 14, Text: "double click anywhere to create a new note"},
			{ID: 2, X: 20, Y: 12, ZIndex: 50, Text: "click and drag on a note to move it"},
			{ID: 3, X: 50, Y: 4, ZIndex: 38, Text: "middle mouse click and drag to pan around"},
			{ID: 4, X: 54, Y: 12, ZIndex: 48, Text: "scroll (mouse wheel) to zoom in and out"},
			{ID: 5, X: 84, Y: 6, ZIndex: 42, Text: `press "s" to save the current state into a file`},
			{ID: 6, X: 88, Y: 15, ZIndex: 52, Text: `press "o" to load a saved state back`},
			{ID: 7, X: 64, Y: 22, ZIndex: 60, Text: "have fun!"},
			{ID: 8, X: 36, Y: 21, ZIndex: 54, Text: "All data is stored locally"},
		},
	}
}
