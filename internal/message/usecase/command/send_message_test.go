package command

import (
	"errors"
	"testing"

	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/message/domain"
	userdomain "github.com/unimarket-dev/unimarket/internal/user/domain"
)

type fakeMessageRepo struct {
	messages []*domain.Message
	nextID   uint
}

func (r *fakeMessageRepo) Create(message *domain.Message) error {
	r.nextID++
	message.ID = r.nextID
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) FindByID(id uint) (*domain.Message, error) {
	for _, message := range r.messages {
		if message.ID == id {
			copied := *message
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeMessageRepo) FindInvolving(userID uint) ([]domain.Message, error) {
	var out []domain.Message
	for i := len(r.messages) - 1; i >= 0; i-- {
		message := r.messages[i]
		if message.SenderID == userID || message.ReceiverID == userID {
			out = append(out, *message)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) FindBetween(userID, otherID uint, listingID *uint, limit int) ([]domain.Message, error) {
	var out []domain.Message
	for _, message := range r.messages {
		between := (message.SenderID == userID && message.ReceiverID == otherID) ||
			(message.SenderID == otherID && message.ReceiverID == userID)
		if !between {
			continue
		}
		if listingID != nil && (message.ListingID == nil || *message.ListingID != *listingID) {
			continue
		}
		out = append(out, *message)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkReadFrom(senderID, receiverID uint) (int64, error) {
	var n int64
	for _, message := range r.messages {
		if message.SenderID == senderID && message.ReceiverID == receiverID && !message.IsRead {
			message.IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *fakeMessageRepo) CountUnreadFrom(senderID, receiverID uint) (int64, error) {
	var n int64
	for _, message := range r.messages {
		if message.SenderID == senderID && message.ReceiverID == receiverID && !message.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *fakeMessageRepo) Update(message *domain.Message) error {
	for i, stored := range r.messages {
		if stored.ID == message.ID {
			copied := *message
			r.messages[i] = &copied
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeUserRepo struct {
	users map[uint]*userdomain.User
}

func (r *fakeUserRepo) Create(user *userdomain.User) error { return nil }

func (r *fakeUserRepo) FindByID(id uint) (*userdomain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, userdomain.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*userdomain.User, error) {
	return nil, userdomain.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*userdomain.User, error) {
	return nil, userdomain.ErrNotFound
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]userdomain.User, error) { return nil, nil }

func (r *fakeUserRepo) FindByRole(role string, limit, offset int) ([]userdomain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(user *userdomain.User) error { return nil }
func (r *fakeUserRepo) Delete(id uint) error               { return nil }
func (r *fakeUserRepo) Count() (int64, error)              { return 0, nil }
func (r *fakeUserRepo) CountByRole(role string) (int64, error) {
	return 0, nil
}

type fakeListingRepo struct {
	listings map[uint]*listingdomain.Listing
}

func (r *fakeListingRepo) Create(listing *listingdomain.Listing) error { return nil }

func (r *fakeListingRepo) FindByID(id uint) (*listingdomain.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, listingdomain.ErrNotFound
	}
	return listing, nil
}

func (r *fakeListingRepo) Search(filter listingdomain.SearchFilter) ([]listingdomain.Listing, error) {
	return nil, nil
}

func (r *fakeListingRepo) FindBySeller(sellerID uint, status string) ([]listingdomain.Listing, error) {
	return nil, nil
}

func (r *fakeListingRepo) Update(listing *listingdomain.Listing) error { return nil }
func (r *fakeListingRepo) Delete(id uint) error                        { return nil }
func (r *fakeListingRepo) IncrementViews(id uint) error                { return nil }
func (r *fakeListingRepo) Count() (int64, error)                       { return 0, nil }

func twoUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*userdomain.User{
		1: {ID: 1, Username: "alice"},
		2: {ID: 2, Username: "bob"},
	}}
}

func TestSendMessage(t *testing.T) {
	messages := &fakeMessageRepo{}
	handler := NewSendMessageHandler(messages, twoUsers(), &fakeListingRepo{})

	message, err := handler.Handle(SendMessageCommand{SenderID: 1, ReceiverID: 2, Body: "Is this still available?"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if message.IsRead {
		t.Fatal("new message marked read")
	}
}

func TestSendMessageToSelf(t *testing.T) {
	handler := NewSendMessageHandler(&fakeMessageRepo{}, twoUsers(), &fakeListingRepo{})

	_, err := handler.Handle(SendMessageCommand{SenderID: 1, ReceiverID: 1, Body: "hello me"})
	if !errors.Is(err, domain.ErrSelfMessage) {
		t.Fatalf("err = %v, want ErrSelfMessage", err)
	}
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	handler := NewSendMessageHandler(&fakeMessageRepo{}, twoUsers(), &fakeListingRepo{})

	_, err := handler.Handle(SendMessageCommand{SenderID: 1, ReceiverID: 99, Body: "hello"})
	if !errors.Is(err, userdomain.ErrNotFound) {
		t.Fatalf("err = %v, want user ErrNotFound", err)
	}
}

func TestSendMessageUnknownListing(t *testing.T) {
	handler := NewSendMessageHandler(&fakeMessageRepo{}, twoUsers(), &fakeListingRepo{})

	listingID := uint(5)
	_, err := handler.Handle(SendMessageCommand{SenderID: 1, ReceiverID: 2, ListingID: &listingID, Body: "hello"})
	if !errors.Is(err, listingdomain.ErrNotFound) {
		t.Fatalf("err = %v, want listing ErrNotFound", err)
	}
}

func TestSendMessageEmptyBody(t *testing.T) {
	handler := NewSendMessageHandler(&fakeMessageRepo{}, twoUsers(), &fakeListingRepo{})

	if _, err := handler.Handle(SendMessageCommand{SenderID: 1, ReceiverID: 2}); err == nil {
		t.Fatal("expected error for empty body")
	}
}

func TestMarkMessageReadReceiverOnly(t *testing.T) {
	messages := &fakeMessageRepo{}
	send := NewSendMessageHandler(messages, twoUsers(), &fakeListingRepo{})
	markRead := NewMarkMessageReadHandler(messages)

	sent, err := send.Handle(SendMessageCommand{SenderID: 1, ReceiverID: 2, Body: "hi"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if _, err := markRead.Handle(MarkMessageReadCommand{MessageID: sent.ID, ReaderID: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("sender mark read err = %v, want ErrNotFound", err)
	}

	updated, err := markRead.Handle(MarkMessageReadCommand{MessageID: sent.ID, ReaderID: 2})
	if err != nil {
		t.Fatalf("receiver mark read: %v", err)
	}
	if !updated.IsRead {
		t.Fatal("message not marked read")
	}
}
