package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	pb "github.com/mmynk/shoppinglist/pkg/api/shoppingv1"
)

func printOverview(w io.Writer, ls []*pb.List) {
	if len(ls) == 0 {
		fmt.Fprintln(w, "No lists.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER\tITEMS\tMEMBERS")
	for _, l := range ls {
		owner := l.Owner
		if l.ViewerIsOwner {
			owner += " (you)"
		}
		name := l.Name
		if l.Archived {
			name += " [archived]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%d\n", l.Id, name, owner, pending(l), len(l.Items), len(l.Members))
	}
	tw.Flush()
}

func printList(w io.Writer, l *pb.List) {
	title := l.Name
	if l.Archived {
		title += " [archived]"
	}
	fmt.Fprintf(w, "%s (id %s, owner %s)\n", title, l.Id, l.Owner)

	// Member ids are needed by rm-member.
	names := make([]string, 0, len(l.Members))
	for _, m := range l.Members {
		names = append(names, fmt.Sprintf("%s (%s)", m.Name, m.Id))
	}
	fmt.Fprintf(w, "Members: %s\n", strings.Join(names, ", "))

	if len(l.Items) == 0 {
		fmt.Fprintln(w, "Nothing to buy.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range l.Items {
		mark := "[ ]"
		if it.Done {
			mark = "[x]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", mark, it.Name, it.Id)
	}
	tw.Flush()
}

// pending counts items not yet done.
func pending(l *pb.List) int {
	n := 0
	for _, it := range l.Items {
		if !it.Done {
			n++
		}
	}
	return n
}
