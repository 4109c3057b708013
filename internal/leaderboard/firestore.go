package leaderboard

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const firestoreCollection = "leaderboard"

// FirestoreStore persists the leaderboard in a Firestore collection, one
// document per game id. The increment rides on a server-side field transform,
// so it is atomic without a read-modify-write round trip.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore builds a Firestore-backed store. credentialsFile may be
// empty, in which case application default credentials are used.
func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore: %w: FIREBASE_PROJECT_ID is not set", ErrStoreUnavailable)
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w: %v", ErrStoreUnavailable, err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Name() string { return "firestore" }

// RecordPlay merges the document for id: Increment creates the field at 1
// when the document is new and bumps it otherwise, in a single write.
func (s *FirestoreStore) RecordPlay(ctx context.Context, id, title, thumbnail string) error {
	_, err := s.client.Collection(firestoreCollection).Doc(id).Set(ctx, map[string]interface{}{
		"title":     title,
		"thumbnail": thumbnail,
		"plays":     firestore.Increment(1),
	}, firestore.MergeAll)
	if err != nil {
		return s.wrap(err)
	}
	return nil
}

// TopN reads the collection ordered by plays descending. Firestore's order
// for tied counts is not specified.
func (s *FirestoreStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	iter := s.client.Collection(firestoreCollection).
		OrderBy("plays", firestore.Desc).
		Limit(n).
		Documents(ctx)
	defer iter.Stop()

	var entries []Entry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, s.wrap(err)
		}
		var e Entry
		if err := doc.DataTo(&e); err != nil {
			return nil, fmt.Errorf("firestore: %w: decode %s: %v", ErrUpstreamRejected, doc.Ref.ID, err)
		}
		e.ID = doc.Ref.ID
		entries = append(entries, e)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Close releases the underlying gRPC connection.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// wrap classifies a Firestore error into the service taxonomy using its gRPC
// status code.
func (s *FirestoreStore) wrap(err error) error {
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.InvalidArgument, codes.FailedPrecondition, codes.AlreadyExists, codes.OutOfRange:
			return fmt.Errorf("firestore: %w: %s", ErrUpstreamRejected, st.Message())
		}
	}
	return fmt.Errorf("firestore: %w: %v", ErrStoreUnavailable, err)
}
