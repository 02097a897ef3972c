// Package models defines the domain models shared by the splitbill front ends.
//
// # Models
//
//   - Participant: a person in the group and the amount they paid
//   - Group: the ordered list of participants splitting one expense
//
// Participants are identified by name only. Names are case-sensitive and must
// be unique within a group; the collectors in the console, input and service
// packages enforce this before any calculation runs.
//
// # Design Principles
//
// 1. **No identity beyond the calculation**: nothing here is stored; every
// model lives for one request or one CLI run
// 2. **Order matters**: the order of participants is the order of balances in
// every report and the tie-break order for settlements
// 3. **Money is decimal**: amounts use shopspring/decimal, never float64
package models
