package arvo

// LegalNotice provides license notices for Arvo itself and any third-party
// dependencies.
const LegalNotice = `Arvo

Copyright (c) 2020 - 2026 The Arvo Authors

Licensed under the terms of the MIT License. A copy of this license can be
found later in this text or online at https://opensource.org/licenses/MIT.


================================================================================
Arvo depends on the following third-party software:
================================================================================

Go, the Go standard library, and the Go sys and term subrepositories.

https://golang.org/
https://github.com/golang/

Copyright (c) 2009 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A copy of
this license can be found later in this text and a templated version can be
found online at https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>
All rights reserved.

Used under the terms of the 2-Clause BSD License. A copy of this license can
be found later in this text or online at
https://opensource.org/licenses/BSD-2-Clause.

--------------------------------------------------------------------------------

Cobra

https://github.com/spf13/cobra

Copyright 2013 Steve Francia <spf@spf13.com>

Used under the terms of the Apache License, Version 2.0. A copy of this
license can be found later in this text or online at
http://www.apache.org/licenses/LICENSE-2.0.

--------------------------------------------------------------------------------

pflag

https://github.com/spf13/pflag

Copyright (c) 2012 Alex Ogier. All rights reserved.
Copyright (c) 2012 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A copy of
this license can be found later in this text and a templated version can be
found online at https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008  Dustin Sallings <dustin@spy.net>

Used under the terms of the MIT License. A copy of this license can be found
later in this text or online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

mousetrap

https://github.com/inconshreveable/mousetrap

Copyright 2014 Alan Shreve

Used under the terms of the Apache License, Version 2.0. A copy of this
license can be found later in this text or online at
http://www.apache.org/licenses/LICENSE-2.0.

--------------------------------------------------------------------------------

color

https://github.com/fatih/color

Copyright (c) 2013 Fatih Arslan

Used under the terms of the MIT License. A copy of this license can be found
later in this text or online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

go-colorable / go-isatty

https://github.com/mattn/go-colorable
https://github.com/mattn/go-isatty

Copyright (c) 2016 Yasuhiro Matsumoto
Copyright (c) Yasuhiro MATSUMOTO <mattn.jp@gmail.com>

Used under the terms of the MIT License. A copy of this license can be found
later in this text or online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

toml

https://github.com/BurntSushi/toml

Copyright (c) 2013 TOML authors

Used under the terms of the MIT License. A copy of this license can be found
later in this text or online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

uuid

https://github.com/google/uuid

Copyright (c) 2009,2014 Google Inc. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A copy of
this license can be found later in this text and a templated version can be
found online at https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

go-winio

https://github.com/Microsoft/go-winio

Copyright (c) 2015 Microsoft

Used under the terms of the MIT License. A copy of this license can be found
later in this text or online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

doublestar

https://github.com/bmatcuk/doublestar

Copyright (c) 2014 Bob Matcuk

Used under the terms of the MIT License. A copy of this license can be found
later in this text or online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

mimetype

https://github.com/gabriel-vasile/mimetype

Copyright (c) 2018 Gabriel Vasile

Used under the terms of the MIT License. A copy of this license can be found
later in this text or online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

yaml.v2

https://github.com/go-yaml/yaml

Copyright (c) 2006-2010 Kirill Simonov
Copyright (c) 2006-2011 Kirill Simonov

Used under the terms of the Apache License, Version 2.0. A copy of this
license can be found later in this text or online at
http://www.apache.org/licenses/LICENSE-2.0.


================================================================================
Arvo and its dependencies make use of the following licenses:
================================================================================

MIT License

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

--------------------------------------------------------------------------------

3-Clause BSD License (Google version)

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

--------------------------------------------------------------------------------

2-Clause BSD License

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

* Redistributions of source code must retain the above copyright notice, this
  list of conditions and the following disclaimer.

* Redistributions in binary form must reproduce the above copyright notice,
  this list of conditions and the following disclaimer in the documentation
  and/or other materials provided with the distribution.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

--------------------------------------------------------------------------------

Apache License, Version 2.0 is available online at
http://www.apache.org/licenses/LICENSE-2.0.
`
