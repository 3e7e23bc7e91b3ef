package domain

// Network is the full persisted state of one user's connections: the
// connection list in insertion order and the profile ids already invited.
type Network struct {
	Connections     []Connection
	SentInvitations []ProfileID
}

func (n Network) FindConnection(id ConnectionID) (Connection, bool) {
	for _, conn := range n.Connections {
		if conn.ID == id {
			return conn, true
		}
	}

	return Connection{}, false
}

func (n Network) FindByProfile(profileID ProfileID) (Connection, bool) {
	for _, conn := range n.Connections {
		if conn.Profile.ID == profileID {
			return conn, true
		}
	}

	return Connection{}, false
}

func (n Network) HasSentInvitation(profileID ProfileID) bool {
	for _, id := range n.SentInvitations {
		if id == profileID {
			return true
		}
	}

	return false
}

func (n *Network) MarkInvited(profileID ProfileID) {
	if n.HasSentInvitation(profileID) {
		return
	}

	n.SentInvitations = append(n.SentInvitations, profileID)
}

func (n *Network) UnmarkInvited(profileID ProfileID) {
	kept := n.SentInvitations[:0]
	for _, id := range n.SentInvitations {
		if id != profileID {
			kept = append(kept, id)
		}
	}
	n.SentInvitations = kept
}

func (n Network) Clone() Network {
	clone := Network{}
	if n.Connections != nil {
		clone.Connections = make([]Connection, len(n.Connections))
		for i, conn := range n.Connections {
			clone.Connections[i] = conn.Clone()
		}
	}
	if n.SentInvitations != nil {
		clone.SentInvitations = append([]ProfileID(nil), n.SentInvitations...)
	}

	return clone
}
