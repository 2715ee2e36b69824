// Package models contains the GORM persistence models of the ledger tables.
// Domain aggregates carry no ORM tags; repositories convert between the two
// with the ToDomain / From* mappers defined next to each model.
package models
