/*
Package operation ensures a line is present in, or absent from, a file on disk.

	+-------------+     +-------------+     +-------------+
	|  FileManager| --> |  lineinfile | --> |  FileManager|
	|   (read)    |     |   (Apply)   |     |   (write)   |
	+-------------+     +-------------+     +-------------+

🎯 Purpose:
- Validates the request before touching the filesystem
- Treats a missing file as empty when Create is set
- Writes the full new content back and reports what changed

🔄 Flow:
1. Validate the LineSpec
2. Read the file (ErrFileNotFound unless Create)
3. Apply the LineSpec to the content
4. Overwrite the file
5. Report the edit via pkg/log

⚡ Batches:
RunAll validates every request up front, then runs the edits of each distinct
path in order. Different paths run concurrently; edits to one path never
overlap.

🔍 Example:

	op, err := operation.New(operation.Options{Files: fileio.New()})
	res, err := op.Run(ctx, operation.Request{
		Path: "/etc/hosts",
		Spec: lineinfile.Present("127.0.0.1 example.test"),
	})
*/
package operation
