// Package listing implements the directory listing engine: metadata
// collection, ordering, column widths, line formatting, layout and the
// recursive traversal that drives them.
//
// A Driver is created per invocation from a gols.ListConfig and a
// filesystem.Provider. Run lists the operands, reports per-path failures
// through the configured logger without stopping, and returns
// gols.ErrListingFailed when anything could not be listed.
//
//	driver := listing.NewDriver(&cfg, os.Stdout, listing.Options{
//	    Provider: filesystem.NewOSFileSystem(),
//	    Resolver: identity.NewOSResolver(),
//	    Logger:   logger,
//	})
//	err := driver.Run(args)
package listing
