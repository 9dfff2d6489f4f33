package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrInvalidAuctionID = errors.New("auction id is not a valid identifier")
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrEmailTaken       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user does not exist")
)

// Bid acceptance errors, one per rejection reason in the validation pipeline
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrAuctionExpired     = errors.New("auction has expired or does not exist")
	ErrSelfBid            = errors.New("you can not bid for your own item")
	ErrBelowStartingPrice = errors.New("bid does not meet the starting price")
	ErrUnderbid           = errors.New("bid does not beat the current highest bid")
	ErrAboveMaximum       = errors.New("bid exceeds the maximum allowed value")
)

// Listing and query errors
var (
	ErrInvalidAuction   = errors.New("invalid auction listing")
	ErrDuplicateAuction = errors.New("this item is added already")
	ErrInvalidType      = errors.New("unknown listing type")
)

// Auth errors
var (
	ErrInvalidUser   = errors.New("invalid user details")
	ErrWrongPassword = errors.New("password is wrong")
	ErrInvalidToken  = errors.New("invalid token")
)
