package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/horizontravels/booking/internal/client"
	"github.com/horizontravels/booking/internal/domain"
	"github.com/horizontravels/booking/internal/wizard"
)

// apiAdapter plugs the HTTP client into the wizard's server boundary.
type apiAdapter struct {
	c *client.Client
}

func (a apiAdapter) CreateBooking(ctx context.Context, sub wizard.Submission) (wizard.Receipt, error) {
	resp, err := a.c.CreateBooking(ctx, client.CreateBookingRequest{
		ItemType:      string(sub.Item.Kind),
		DestinationID: sub.Item.ID,
		CustomerName:  sub.CustomerName,
		Email:         sub.Email,
		CardDetails:   sub.Card,
		Amount:        sub.Amount,
	})
	if err != nil {
		return wizard.Receipt{}, err
	}
	return wizard.Receipt{BookingID: resp.BookingID, Message: resp.Message}, nil
}

func main() {
	apiURL := flag.String("api", "http://localhost:3001", "booking API base URL")
	itemType := flag.String("type", "destination", "item type: destination, rental or tour")
	itemID := flag.Int64("item", 1, "catalog item id")
	name := flag.String("name", "", "customer name")
	email := flag.String("email", "", "customer email")
	card := flag.String("card", "", "card number")
	expiry := flag.String("expiry", "12/27", "card expiry MM/YY")
	cvv := flag.String("cvv", "123", "card cvv")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := client.New(*apiURL)
	item, err := pickItem(ctx, c, domain.ItemKind(*itemType), *itemID)
	if err != nil {
		log.Fatalf("pick item: %v", err)
	}
	fmt.Printf("Booking %q ($%d)\n", item.Name, item.Price)

	w := wizard.New(apiAdapter{c: c})
	if err := w.Start(item); err != nil {
		log.Fatalf("start wizard: %v", err)
	}
	if err := w.EnterDetails(*name, *email); err != nil {
		log.Fatalf("details: %v", err)
	}

	receipt, err := w.Submit(ctx, domain.CardDetails{Number: *card, Expiry: *expiry, CVV: *cvv})
	if err != nil {
		fmt.Fprintf(os.Stderr, "payment failed: %s\n", w.LastError())
		os.Exit(1)
	}
	fmt.Printf("%s\nBooking id: %s\n", receipt.Message, receipt.BookingID)

	bookings, err := c.FetchBookings(ctx)
	if err != nil {
		log.Fatalf("fetch bookings: %v", err)
	}
	fmt.Printf("You now have %d booking(s).\n", len(bookings))
}

func pickItem(ctx context.Context, c *client.Client, kind domain.ItemKind, id int64) (domain.Item, error) {
	switch kind {
	case domain.ItemKindDestination:
		dests, err := c.FetchDestinations(ctx)
		if err != nil {
			return domain.Item{}, err
		}
		for _, d := range dests {
			if d.ID == id {
				return d.Item(), nil
			}
		}
	case domain.ItemKindRental:
		rentals, err := c.FetchRentals(ctx)
		if err != nil {
			return domain.Item{}, err
		}
		for _, r := range rentals {
			if r.ID == id {
				return r.Item(), nil
			}
		}
	case domain.ItemKindTour:
		tours, err := c.FetchTours(ctx)
		if err != nil {
			return domain.Item{}, err
		}
		for _, t := range tours {
			if t.ID == id {
				return t.Item(), nil
			}
		}
	default:
		return domain.Item{}, fmt.Errorf("unknown item type %q", kind)
	}
	return domain.Item{}, fmt.Errorf("no %s with id %d", kind, id)
}
