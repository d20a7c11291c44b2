package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/raw --output domain/raw --outpkg rawmock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SnapshotStore --dir ../domain/raw --output domain/raw --outpkg rawmock --filename snapshot_store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SilverRepository --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename silver_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GoldRepository --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename gold_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RunRepository --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename run_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name QueryRepository --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename query_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ShotRepository --dir ../domain/xg --output domain/xg --outpkg xgmock --filename shot_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ModelStore --dir ../domain/xg --output domain/xg --outpkg xgmock --filename model_store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/xt --output domain/xt --outpkg xtmock --filename repository_mock.go
