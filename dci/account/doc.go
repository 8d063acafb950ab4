// Package account provides the bank account data type.
//
// Account values are immutable: Deposit and Withdraw return a new Account and
// leave the receiver untouched. Account plays both transfer roles, so two
// accounts can be paired by transfer.New.
package account
