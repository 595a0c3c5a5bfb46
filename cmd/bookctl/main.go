// Command bookctl drives a bookengine.Book from a textual instruction
// file, printing a summary block after every instruction, the way
// original_source/main.cpp's instrumentation loop does.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/umarfarooq-loki/bookengine"
	"github.com/umarfarooq-loki/bookengine/internal/instrfile"
)

func main() {
	path := flag.String("file", "Instructions.txt", "path to the instruction file")
	flag.Parse()

	fmt.Println("STARTED")

	records, exp, err := instrfile.Read(*path)
	if err != nil {
		log.Fatalf("parse failed: %v", err)
	}
	fmt.Println("PARSED INSTRUCTIONS")

	book := bookengine.NewBook()
	defer book.Close()

	for i, rec := range records {
		switch rec.Kind {
		case instrfile.Add:
			book.Add(rec.OrderID, rec.Side, rec.OrderType, rec.Price, rec.Quantity)
		case instrfile.Modify:
			book.Modify(rec.OrderID, rec.Side, rec.Price, rec.Quantity)
		case instrfile.Cancel:
			book.Cancel(rec.OrderID)
		default:
			log.Fatalf("unsupported record kind %v", rec.Kind)
		}

		bids, asks := book.LevelInfos()
		fmt.Printf("\n=== Instruction %d ===\n", i)
		fmt.Println("----- Orderbook Summary -----")
		fmt.Printf("Orderbook Size: %d\n", book.Size())
		fmt.Printf("Number of Ask Levels: %d\n", len(asks))
		fmt.Printf("Number of Bid Levels: %d\n", len(bids))
		fmt.Println("-------------------------------")
	}

	fmt.Println("\nFINISHED")

	if exp != nil {
		bids, asks := book.LevelInfos()
		if book.Size() != exp.Total || len(bids) != exp.Bids || len(asks) != exp.Asks {
			log.Fatalf("expectation mismatch: got size=%d bidLevels=%d askLevels=%d, want size=%d bidLevels=%d askLevels=%d",
				book.Size(), len(bids), len(asks), exp.Total, exp.Bids, exp.Asks)
		}
	}
}
