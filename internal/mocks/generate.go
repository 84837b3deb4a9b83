package mocks

//go:generate mockery --name RevenueReader --srcpkg github.com/aevon-lab/revenue-grid/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Runner --srcpkg github.com/aevon-lab/revenue-grid/internal/pipeline --output ./pipeline --outpkg pipelinemocks --with-expecter
