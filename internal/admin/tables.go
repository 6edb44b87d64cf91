package admin

import (
	"fmt"
	"text/tabwriter"
)

// RenderBookings prints the booking table, with a single placeholder row
// when the list is empty.
func (c *Console) RenderBookings() {
	fmt.Fprintln(c.out, "\nBookings")
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tEMAIL\tPHONE\tSERVICE\tDATE\tSTATUS")
	if len(c.bookings) == 0 {
		fmt.Fprintln(w, "-\tNo bookings yet\t\t\t\t\t")
	}
	for i, b := range c.bookings {
		date := b.PreferredDate
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, b.Name, b.Email, b.Phone, b.ServiceType, date, b.Status)
	}
	w.Flush()
}

// RenderContacts prints the contact message table.
func (c *Console) RenderContacts() {
	fmt.Fprintln(c.out, "\nMessages")
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tEMAIL\tPHONE\tMESSAGE")
	if len(c.contacts) == 0 {
		fmt.Fprintln(w, "-\tNo messages yet\t\t\t")
	}
	for i, m := range c.contacts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, m.Name, m.Email, m.Phone, truncate(m.Message, 40))
	}
	w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
