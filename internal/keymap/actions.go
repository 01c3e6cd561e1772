// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionToggleDrinks Action = "toggle_drinks" // n - drink log sheet

	// Shop list actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - open shop sheet

	// Sheet actions
	ActionSheetExpand   Action = "sheet_expand"
	ActionSheetCollapse Action = "sheet_collapse"
	ActionSheetClose    Action = "sheet_close"
	ActionSheetPageUp   Action = "sheet_page_up"
	ActionSheetPageDown Action = "sheet_page_down"
)
