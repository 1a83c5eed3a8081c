package mongodb_test

import (
	"context"
	"testing"

	"graphsense-dashboard/pkg/mongodb"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewConnection(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		expect func(*testing.T, *mongo.Client, error)
	}{
		{
			name: "should return mongo",
			uri:  "mongodb://localhost:27017",
			expect: func(t *testing.T, client *mongo.Client, err error) {
				assert.NotNil(t, client)
				assert.NoError(t, err)
			},
		},
		{
			name: "should return invalid url",
			uri:  "",
			expect: func(t *testing.T, client *mongo.Client, err error) {
				assert.Nil(t, client)
				assert.EqualError(t, err, "[mongodb] invalid url")
			},
		},
		{
			name: "should reject other schemes",
			uri:  "http://localhost:27017",
			expect: func(t *testing.T, client *mongo.Client, err error) {
				assert.Nil(t, client)
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := mongodb.NewConnection(context.Background(), tc.uri)
			tc.expect(t, client, err)
		})
	}
}
