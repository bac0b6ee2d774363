package dao

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/a-kuchuk/seng2021/models"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	var err error
	client, err = mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no database connection so the prog must
	// crash here as the service cannot continue.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = client.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as
// the backend store for invoice records.
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
}

var mgoOnce sync.Once
var mgoService *MongoService

// NewMongoService returns the shared Mongo-backed DAO.
func NewMongoService(mongoDBURL, databaseName, collectionName string) *MongoService {
	mgoOnce.Do(func() {
		mgoService = &MongoService{
			db:             getMongoDatabase(mongoDBURL, databaseName),
			CollectionName: collectionName,
		}
	})
	return mgoService
}

// CreateInvoiceResource writes a new invoice resource to the DB
func (m *MongoService) CreateInvoiceResource(invoiceResource *models.InvoiceResourceDB) error {
	collection := m.db.Collection(m.CollectionName)
	_, err := collection.InsertOne(context.Background(), invoiceResource)

	return err
}

// GetInvoiceResource gets an invoice resource from the DB
// If the invoice is not found in the DB, return nil
func (m *MongoService) GetInvoiceResource(invoiceID int) (*models.InvoiceResourceDB, error) {
	var resource models.InvoiceResourceDB

	collection := m.db.Collection(m.CollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"invoice_id": invoiceID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// ReplaceInvoiceResource replaces the data of a stored invoice resource.
// The replace is last-write-wins; concurrent edits to the same invoice id
// are not serialized.
func (m *MongoService) ReplaceInvoiceResource(invoiceID int, invoiceResource *models.InvoiceResourceDB) error {
	collection := m.db.Collection(m.CollectionName)

	update := bson.M{"$set": bson.M{"data": invoiceResource.Data}}
	_, err := collection.UpdateOne(context.Background(), bson.M{"invoice_id": invoiceID}, update)

	return err
}

// DeleteInvoiceResource removes an invoice resource from the DB, reporting
// whether a record was actually removed.
func (m *MongoService) DeleteInvoiceResource(invoiceID int) (bool, error) {
	collection := m.db.Collection(m.CollectionName)

	result, err := collection.DeleteOne(context.Background(), bson.M{"invoice_id": invoiceID})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
