package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/transfer --output domain/transfer --outpkg transfermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name FeedProvider --dir ../domain/transfer --output domain/transfer --outpkg transfermock --filename feed_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/competition --output domain/competition --outpkg competitionmock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/fixture --output domain/fixture --outpkg fixturemock --filename provider_mock.go
