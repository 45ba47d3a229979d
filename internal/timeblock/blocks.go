// Package timeblock maps block indices to wall-clock intervals.
//
// A teaching day has ten 70-minute blocks separated by 15-minute gaps.
// Blocks 1-4 run on an 85-minute cadence from 08:15; the lunch break moves
// block 5 to 14:40, and blocks 5-10 continue the same cadence from there.
package timeblock

import (
	"errors"
	"fmt"
)

const (
	MinBlock = 1
	MaxBlock = 10

	// DurationMinutes is the teaching length of one block.
	DurationMinutes = 70

	cadenceMinutes = 85 // 70 min block + 15 min gap

	morningStartMinute   = 8*60 + 15  // 08:15, block 1
	afternoonStartMinute = 14*60 + 40 // 14:40, block 5
	firstAfternoonBlock  = 5
)

// ErrBlockOutOfRange reports a block index outside [MinBlock, MaxBlock].
var ErrBlockOutOfRange = errors.New("block out of range")

// StartMinute returns the minute-of-day at which the block starts.
func StartMinute(block int) (int, error) {
	if block < MinBlock || block > MaxBlock {
		return 0, fmt.Errorf("%w: %d", ErrBlockOutOfRange, block)
	}
	if block < firstAfternoonBlock {
		return morningStartMinute + (block-1)*cadenceMinutes, nil
	}
	return afternoonStartMinute + (block-firstAfternoonBlock)*cadenceMinutes, nil
}

// Interval returns the block's start and end as zero-padded "HH:MM".
func Interval(block int) (start, end string, err error) {
	startMinute, err := StartMinute(block)
	if err != nil {
		return "", "", err
	}
	return clock(startMinute), clock(startMinute + DurationMinutes), nil
}

// Label renders the block interval as "HH:MM-HH:MM".
func Label(block int) (string, error) {
	start, end, err := Interval(block)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", start, end), nil
}

func clock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}
