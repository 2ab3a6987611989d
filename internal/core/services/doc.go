// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The three gates (verification token, login session, open) all satisfy
// driven.Gate, so the search controller never knows which strategy a
// given run uses.
package services
